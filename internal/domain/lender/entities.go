package lender

import (
	"time"
)

// Lender row presence is the registration flag; registration is never unset.
type Lender struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Address   string    `gorm:"size:40;not null;uniqueIndex:ux_lenders_address" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Lender) TableName() string { return "lenders" }

// ProofRequirement is one entry of a lender's ordered requirement list. Ref
// is either a verification request id or a verifier contract reference,
// depending on how the borrower's proofs are checked. Position carries list
// order; removal swaps the last entry into the removed slot, so only set
// membership is stable across removals.
type ProofRequirement struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	LenderAddress string    `gorm:"size:40;not null;uniqueIndex:ux_requirements_lender_pos" json:"lender"`
	Position      int       `gorm:"not null;uniqueIndex:ux_requirements_lender_pos" json:"-"`
	Ref           string    `gorm:"size:128;not null" json:"ref"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
}

func (ProofRequirement) TableName() string { return "lender_proof_requirements" }

// FundedLoan is one entry of a lender's append-only funded-loan log.
type FundedLoan struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	LenderAddress string    `gorm:"size:40;not null;index:idx_funded_loans_lender" json:"lender"`
	LoanID        uint64    `gorm:"not null" json:"loan_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"funded_at"`
}

func (FundedLoan) TableName() string { return "lender_funded_loans" }
