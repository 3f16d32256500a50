package loanmock

import (
	"context"

	domain "peerlend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. Fill in the
// function fields a test needs; unfilled ones return context.Canceled.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByIDFn          func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	GetByIDForUpdateFn func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	SaveFn             func(ctx context.Context, l *domain.Loan) error
	AppendOfferFn      func(ctx context.Context, o *domain.Offer) error
	GetOfferFn         func(ctx context.Context, loanID uint64, idx int) (*domain.Offer, error)
	ListOffersFn       func(ctx context.Context, loanID uint64) ([]domain.Offer, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) AppendOffer(ctx context.Context, o *domain.Offer) error {
	if m.AppendOfferFn != nil {
		return m.AppendOfferFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetOffer(ctx context.Context, loanID uint64, idx int) (*domain.Offer, error) {
	if m.GetOfferFn != nil {
		return m.GetOfferFn(ctx, loanID, idx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOffers(ctx context.Context, loanID uint64) ([]domain.Offer, error) {
	if m.ListOffersFn != nil {
		return m.ListOffersFn(ctx, loanID)
	}
	return nil, context.Canceled
}
