package loan

import (
	"time"
)

// Loan is the authoritative ledger record for one loan request. Lifecycle is
// append-only: SelectedLender is set at most once, Funded and Repaid only
// ever flip false→true, and rows are never deleted, so the auto-increment ID
// doubles as the public, sequential, never-reused loan id.
type Loan struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"loan_id"`
	Borrower        string    `gorm:"size:40;index:idx_loans_borrower;not null" json:"borrower"`
	Token           string    `gorm:"size:40;not null" json:"token"`
	AmountRequested int64     `gorm:"not null" json:"amount_requested"`
	MaxInterest     int64     `gorm:"not null" json:"max_interest"`
	DueDate         time.Time `gorm:"not null" json:"due_date"`
	SelectedLender  *string   `gorm:"size:40" json:"selected_lender,omitempty"`
	Interest        int64     `json:"interest"`
	Funded          bool      `gorm:"not null;default:false" json:"funded"`
	Repaid          bool      `gorm:"not null;default:false" json:"repaid"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Offers          []Offer   `gorm:"foreignKey:LoanID" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Offer is immutable once appended. Idx is the position in the loan's offer
// list in submission order; it is the selection key for accepting an offer.
type Offer struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID          uint64    `gorm:"not null;uniqueIndex:ux_offers_loan_idx" json:"loan_id"`
	Idx             int       `gorm:"not null;uniqueIndex:ux_offers_loan_idx" json:"offer_index"`
	Lender          string    `gorm:"size:40;not null" json:"lender"`
	InterestOffered int64     `gorm:"not null" json:"interest_offered"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Offer) TableName() string { return "offers" }
