package lender

import "context"

type Repository interface {
	Create(ctx context.Context, l *Lender) error
	GetByAddress(ctx context.Context, address string) (*Lender, error)

	// ReplaceRequirements drops the lender's current list and writes refs in
	// the given order; last write wins.
	ReplaceRequirements(ctx context.Context, address string, refs []string) error
	// AddRequirement appends ref at the end of the list.
	AddRequirement(ctx context.Context, address, ref string) error
	// RemoveRequirement deletes ref by swapping the last entry into its
	// position. Returns ErrRequirementNotFound when ref is absent.
	RemoveRequirement(ctx context.Context, address, ref string) error
	// ListRequirements returns the current list ordered by position.
	ListRequirements(ctx context.Context, address string) ([]ProofRequirement, error)

	AppendFundedLoan(ctx context.Context, address string, loanID uint64) error
	ListFundedLoans(ctx context.Context, address string) ([]FundedLoan, error)
}
