package settlement

type FundResultDTO struct {
	LoanID   uint64 `json:"loan_id"`
	Lender   string `json:"lender"`
	Borrower string `json:"borrower"`
	Amount   int64  `json:"amount"`
	Funded   bool   `json:"funded"`
}

type RepayResultDTO struct {
	LoanID   uint64 `json:"loan_id"`
	Borrower string `json:"borrower"`
	Lender   string `json:"lender"`
	TotalDue int64  `json:"total_due"`
	Repaid   bool   `json:"repaid"`
}
