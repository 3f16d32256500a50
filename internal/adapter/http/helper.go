package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	domainApp "peerlend/internal/domain/application"
	domainLender "peerlend/internal/domain/lender"
	domainLoan "peerlend/internal/domain/loan"
	domainLock "peerlend/internal/domain/lock"
	domainToken "peerlend/internal/domain/token"
)

// CallerHeader carries the acting principal's address on every mutating
// request; the idempotency middleware validates its shape.
const CallerHeader = "Ax-Caller-Address"

func callerAddress(c echo.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Request().Header.Get(CallerHeader)))
}

func parseLoanID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("loan_id"), 10, 64)
}

// statusFor maps domain errors onto the HTTP surface: authorization 403,
// state conflicts 409, validation 422, guard held 423, transfer failures 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainApp.ErrNotFound),
		errors.Is(err, domainLender.ErrRequirementNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainLoan.ErrNotBorrower),
		errors.Is(err, domainLoan.ErrNotSelectedLender),
		errors.Is(err, domainLender.ErrNotRegistered),
		errors.Is(err, domainApp.ErrProofNotVerified):
		return http.StatusForbidden
	case errors.Is(err, domainLoan.ErrAlreadyFunded),
		errors.Is(err, domainLoan.ErrNotFunded),
		errors.Is(err, domainLoan.ErrAlreadyRepaid),
		errors.Is(err, domainLoan.ErrAlreadySelected),
		errors.Is(err, domainLender.ErrAlreadyRegistered),
		errors.Is(err, domainApp.ErrAlreadyApplied),
		errors.Is(err, domainApp.ErrAlreadyReviewed),
		errors.Is(err, domainApp.ErrNoApplication):
		return http.StatusConflict
	case errors.Is(err, domainLoan.ErrInvalidAmount),
		errors.Is(err, domainLoan.ErrInvalidInterest),
		errors.Is(err, domainLoan.ErrDueDateNotFuture),
		errors.Is(err, domainLoan.ErrInvalidOfferIndex),
		errors.Is(err, domainLoan.ErrOfferTooHigh),
		errors.Is(err, domainLoan.ErrPastDue),
		errors.Is(err, domainLoan.ErrAmountOverflow),
		errors.Is(err, domainLender.ErrEmptyRequirements),
		errors.Is(err, domainLender.ErrNoRequirementsSet),
		errors.Is(err, domainApp.ErrPresentationCountMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainLock.ErrHeld):
		return http.StatusLocked
	case errors.Is(err, domainToken.ErrTransferFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeDomainError(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
