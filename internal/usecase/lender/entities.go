package lender

import "time"

type LenderDTO struct {
	Address      string    `json:"address"`
	RegisteredAt time.Time `json:"registered_at"`
}

type RequirementsDTO struct {
	Lender string   `json:"lender"`
	Refs   []string `json:"refs"`
}

type FundedLoanDTO struct {
	LoanID   uint64    `json:"loan_id"`
	FundedAt time.Time `json:"funded_at"`
}
