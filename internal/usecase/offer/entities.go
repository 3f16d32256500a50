package offer

import "time"

type ReviewInput struct {
	LoanID uint64
	// Caller is the reviewing lender.
	Caller string
	Accept bool
	// InterestOffered is only read when Accept is true.
	InterestOffered int64
}

type AcceptInput struct {
	LoanID uint64
	// Caller must be the loan's borrower.
	Caller     string
	OfferIndex int
}

type OfferDTO struct {
	LoanID          uint64    `json:"loan_id"`
	OfferIndex      int       `json:"offer_index"`
	Lender          string    `json:"lender"`
	InterestOffered int64     `json:"interest_offered"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewDTO struct {
	LoanID     uint64    `json:"loan_id"`
	Lender     string    `json:"lender"`
	Accepted   bool      `json:"accepted"`
	ReviewedAt time.Time `json:"reviewed_at"`
	// Offer is set only when the review accepted the application.
	Offer *OfferDTO `json:"offer,omitempty"`
}

type AcceptanceDTO struct {
	LoanID         uint64 `json:"loan_id"`
	SelectedLender string `json:"selected_lender"`
	Interest       int64  `json:"interest"`
	OfferIndex     int    `json:"offer_index"`
}
