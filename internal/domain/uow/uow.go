package uow

import (
	"context"

	"peerlend/internal/domain/application"
	"peerlend/internal/domain/event"
	"peerlend/internal/domain/lender"
	"peerlend/internal/domain/loan"
)

type Repos struct {
	Loans        loan.Repository
	Lenders      lender.Repository
	Applications application.Repository
	Events       event.Repository
}

// UnitOfWork runs fn inside one DB transaction; any error rolls every write
// back, which is what makes each public operation all-or-nothing.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in.
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
