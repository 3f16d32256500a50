package event

import "context"

type Repository interface {
	Append(ctx context.Context, e *Event) error
	ListByLoanID(ctx context.Context, loanID uint64) ([]Event, error)
	ListByActor(ctx context.Context, actor string) ([]Event, error)
}
