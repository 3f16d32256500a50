package http

import (
	"net/http"

	"peerlend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type applyReq struct {
	Lender string `json:"lender" validate:"required,hex40"`
	// Presentations are optional; when present, one per requirement in list
	// order.
	Presentations []string `json:"presentations" validate:"omitempty,dive,required"`
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Apply(c.Request().Context(), application.ApplyInput{
		LoanID:        loanID,
		Caller:        callerAddress(c),
		Lender:        req.Lender,
		Presentations: req.Presentations,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
