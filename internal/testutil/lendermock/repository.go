package lendermock

import (
	"context"

	domain "peerlend/internal/domain/lender"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies lender.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, l *domain.Lender) error
	GetByAddressFn        func(ctx context.Context, address string) (*domain.Lender, error)
	ReplaceRequirementsFn func(ctx context.Context, address string, refs []string) error
	AddRequirementFn      func(ctx context.Context, address, ref string) error
	RemoveRequirementFn   func(ctx context.Context, address, ref string) error
	ListRequirementsFn    func(ctx context.Context, address string) ([]domain.ProofRequirement, error)
	AppendFundedLoanFn    func(ctx context.Context, address string, loanID uint64) error
	ListFundedLoansFn     func(ctx context.Context, address string) ([]domain.FundedLoan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Lender) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByAddress(ctx context.Context, address string) (*domain.Lender, error) {
	if m.GetByAddressFn != nil {
		return m.GetByAddressFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) ReplaceRequirements(ctx context.Context, address string, refs []string) error {
	if m.ReplaceRequirementsFn != nil {
		return m.ReplaceRequirementsFn(ctx, address, refs)
	}
	return nil
}

func (m *Repo) AddRequirement(ctx context.Context, address, ref string) error {
	if m.AddRequirementFn != nil {
		return m.AddRequirementFn(ctx, address, ref)
	}
	return nil
}

func (m *Repo) RemoveRequirement(ctx context.Context, address, ref string) error {
	if m.RemoveRequirementFn != nil {
		return m.RemoveRequirementFn(ctx, address, ref)
	}
	return nil
}

func (m *Repo) ListRequirements(ctx context.Context, address string) ([]domain.ProofRequirement, error) {
	if m.ListRequirementsFn != nil {
		return m.ListRequirementsFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) AppendFundedLoan(ctx context.Context, address string, loanID uint64) error {
	if m.AppendFundedLoanFn != nil {
		return m.AppendFundedLoanFn(ctx, address, loanID)
	}
	return nil
}

func (m *Repo) ListFundedLoans(ctx context.Context, address string) ([]domain.FundedLoan, error) {
	if m.ListFundedLoansFn != nil {
		return m.ListFundedLoansFn(ctx, address)
	}
	return nil, context.Canceled
}
