package application

import "time"

type ApplyInput struct {
	LoanID uint64
	// Caller is the acting principal; must be the loan's borrower.
	Caller string
	Lender string
	// Presentations selects the verification strategy: empty means the
	// oracle is asked for prior verification status per requirement; non-empty
	// means presentation i is verified against requirement i.
	Presentations []string
}

type ApplicationDTO struct {
	LoanID    uint64    `json:"loan_id"`
	Borrower  string    `json:"borrower"`
	Lender    string    `json:"lender"`
	AppliedAt time.Time `json:"applied_at"`
}
