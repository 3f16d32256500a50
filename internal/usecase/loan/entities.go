package loan

import "time"

type RequestLoanInput struct {
	Borrower        string    `json:"borrower"`
	Token           string    `json:"token"`
	AmountRequested int64     `json:"amount_requested"`
	MaxInterest     int64     `json:"max_interest"`
	DueDate         time.Time `json:"due_date"`
}

type LoanDTO struct {
	LoanID          uint64    `json:"loan_id"`
	Borrower        string    `json:"borrower"`
	Token           string    `json:"token"`
	AmountRequested int64     `json:"amount_requested"`
	MaxInterest     int64     `json:"max_interest"`
	DueDate         time.Time `json:"due_date"`
	SelectedLender  string    `json:"selected_lender,omitempty"`
	Interest        int64     `json:"interest"`
	Funded          bool      `json:"funded"`
	Repaid          bool      `json:"repaid"`
	CreatedAt       time.Time `json:"created_at"`
}

type EventDTO struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	Actor        string    `json:"actor"`
	Counterparty string    `json:"counterparty,omitempty"`
	Amount       int64     `json:"amount,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
