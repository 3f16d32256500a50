package http

import (
	"net/http"
	"time"

	"peerlend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type requestLoanReq struct {
	Token           string `json:"token"            validate:"required,hex40"`
	AmountRequested int64  `json:"amount_requested" validate:"required,gt=0"`
	MaxInterest     int64  `json:"max_interest"     validate:"gte=0"`
	// Canonical RFC3339 with timezone
	DueDate string `json:"due_date"         validate:"required"`
}

func (h *LoanHandler) RequestLoan(c echo.Context) error {
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "due_date", Message: "must be RFC3339 with timezone"}},
		})
	}

	dto, err := h.uc.Request(c.Request().Context(), loan.RequestLoanInput{
		Borrower:        callerAddress(c),
		Token:           req.Token,
		AmountRequested: req.AmountRequested,
		MaxInterest:     req.MaxInterest,
		DueDate:         dueDate,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoanEvents(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	events, err := h.uc.Events(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}
