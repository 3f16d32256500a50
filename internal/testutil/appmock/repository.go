package appmock

import (
	"context"

	domain "peerlend/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateApplicationFn func(ctx context.Context, a *domain.Application) error
	GetApplicationFn    func(ctx context.Context, loanID uint64, lender string) (*domain.Application, error)
	CreateReviewFn      func(ctx context.Context, r *domain.Review) error
	GetReviewFn         func(ctx context.Context, loanID uint64, lender string) (*domain.Review, error)
}

func (m *Repo) CreateApplication(ctx context.Context, a *domain.Application) error {
	if m.CreateApplicationFn != nil {
		return m.CreateApplicationFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetApplication(ctx context.Context, loanID uint64, lender string) (*domain.Application, error) {
	if m.GetApplicationFn != nil {
		return m.GetApplicationFn(ctx, loanID, lender)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) CreateReview(ctx context.Context, r *domain.Review) error {
	if m.CreateReviewFn != nil {
		return m.CreateReviewFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetReview(ctx context.Context, loanID uint64, lender string) (*domain.Review, error) {
	if m.GetReviewFn != nil {
		return m.GetReviewFn(ctx, loanID, lender)
	}
	return nil, domain.ErrNotFound
}
