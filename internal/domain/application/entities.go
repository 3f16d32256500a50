package application

import (
	"time"
)

// Application marks that a borrower applied to one lender for one loan.
// Write-once per (loan_id, lender): the unique index backs the usecase-level
// AlreadyApplied check.
type Application struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID    uint64    `gorm:"not null;uniqueIndex:ux_applications_loan_lender" json:"loan_id"`
	Lender    string    `gorm:"size:40;not null;uniqueIndex:ux_applications_loan_lender" json:"lender"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

func (Application) TableName() string { return "loan_applications" }

// Review marks that a lender reviewed an application, accepting or rejecting
// it. Write-once per (loan_id, lender); a second review is always an error,
// never a silent no-op.
type Review struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID    uint64    `gorm:"not null;uniqueIndex:ux_reviews_loan_lender" json:"loan_id"`
	Lender    string    `gorm:"size:40;not null;uniqueIndex:ux_reviews_loan_lender" json:"lender"`
	Accepted  bool      `gorm:"not null" json:"accepted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"reviewed_at"`
}

func (Review) TableName() string { return "loan_reviews" }
