package event

import (
	"time"
)

// Event types, one per state transition.
const (
	TypeLenderRegistered   = "lender.registered"
	TypeRequirementsSet    = "lender.requirements_set"
	TypeRequirementAdded   = "lender.requirement_added"
	TypeRequirementRemoved = "lender.requirement_removed"
	TypeLoanRequested      = "loan.requested"
	TypeLoanApplied        = "loan.applied"
	TypeOfferSubmitted     = "offer.submitted"
	TypeOfferRejected      = "offer.rejected"
	TypeOfferAccepted      = "offer.accepted"
	TypeLoanFunded         = "loan.funded"
	TypeLoanRepaid         = "loan.repaid"
)

// Event is one immutable audit-trail row, written in the same transaction as
// the transition it records. This log is the only durable history beyond the
// current ledger snapshot.
type Event struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	EventID      string    `gorm:"type:char(32);not null;uniqueIndex:ux_events_event_id" json:"event_id"`
	Type         string    `gorm:"size:40;not null" json:"type"`
	LoanID       *uint64   `gorm:"index:idx_events_loan" json:"loan_id,omitempty"`
	Actor        string    `gorm:"size:40;not null" json:"actor"`
	Counterparty string    `gorm:"size:40" json:"counterparty,omitempty"`
	Amount       int64     `json:"amount,omitempty"`
	Detail       string    `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "events" }
