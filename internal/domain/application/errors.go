package application

import "errors"

var (
	ErrNotFound                  = errors.New("application not found")
	ErrAlreadyApplied            = errors.New("borrower already applied to this lender for this loan")
	ErrNoApplication             = errors.New("no application exists for this loan and lender")
	ErrAlreadyReviewed           = errors.New("lender already reviewed this loan")
	ErrProofNotVerified          = errors.New("proof requirement not verified")
	ErrPresentationCountMismatch = errors.New("presentation count does not match requirement count")
)
