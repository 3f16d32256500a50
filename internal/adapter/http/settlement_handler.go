package http

import (
	"net/http"

	"peerlend/internal/usecase/settlement"

	"github.com/labstack/echo/v4"
)

type SettlementHandler struct{ uc *settlement.Usecase }

func NewSettlementHandler(uc *settlement.Usecase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

func (h *SettlementHandler) FundLoan(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Fund(c.Request().Context(), loanID, callerAddress(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SettlementHandler) RepayLoan(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Repay(c.Request().Context(), loanID, callerAddress(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
