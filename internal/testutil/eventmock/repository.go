package eventmock

import (
	"context"
	"sync"

	domain "peerlend/internal/domain/event"
)

var _ domain.Repository = (*Repo)(nil)

// Repo records appended events in memory so tests can assert on the audit
// trail without a database.
type Repo struct {
	mu       sync.Mutex
	Appended []domain.Event

	AppendFn       func(ctx context.Context, e *domain.Event) error
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]domain.Event, error)
	ListByActorFn  func(ctx context.Context, actor string) ([]domain.Event, error)
}

func (m *Repo) Append(ctx context.Context, e *domain.Event) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Appended = append(m.Appended, *e)
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Event, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Event
	for _, e := range m.Appended {
		if e.LoanID != nil && *e.LoanID == loanID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Repo) ListByActor(ctx context.Context, actor string) ([]domain.Event, error) {
	if m.ListByActorFn != nil {
		return m.ListByActorFn(ctx, actor)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Event
	for _, e := range m.Appended {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out, nil
}

// Types returns the appended event types in order, for compact assertions.
func (m *Repo) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Appended))
	for _, e := range m.Appended {
		out = append(out, e.Type)
	}
	return out
}
