package application

import "context"

type Repository interface {
	// CreateApplication inserts the write-once application record; the DB
	// uniqueness constraint guarantees at most one per (loan, lender).
	CreateApplication(ctx context.Context, a *Application) error
	GetApplication(ctx context.Context, loanID uint64, lender string) (*Application, error)

	CreateReview(ctx context.Context, r *Review) error
	GetReview(ctx context.Context, loanID uint64, lender string) (*Review, error)
}
