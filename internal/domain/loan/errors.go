package loan

import "errors"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrNotBorrower       = errors.New("caller is not the loan borrower")
	ErrNotSelectedLender = errors.New("caller is not the selected lender")
	ErrAlreadyFunded     = errors.New("loan already funded")
	ErrNotFunded         = errors.New("loan not funded")
	ErrAlreadyRepaid     = errors.New("loan already repaid")
	ErrAlreadySelected   = errors.New("an offer was already accepted for this loan")
	ErrInvalidOfferIndex = errors.New("offer index out of range")
	ErrOfferTooHigh      = errors.New("offered interest exceeds the loan's max interest")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidInterest   = errors.New("max interest must not be negative")
	ErrDueDateNotFuture  = errors.New("due date must be in the future")
	ErrPastDue           = errors.New("loan is past its due date")
	ErrAmountOverflow    = errors.New("total due overflows")
)
