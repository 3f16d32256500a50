package lockmock

import (
	"context"
	"sync"

	"peerlend/internal/domain/lock"
)

var _ lock.Locker = (*Locker)(nil)

// Locker is an in-memory lock.Locker with real mutual-exclusion semantics:
// acquiring a held key fails with lock.ErrHeld, like the redis guard.
type Locker struct {
	mu   sync.Mutex
	held map[string]bool

	AcquireFn func(ctx context.Context, key string) error
	ReleaseFn func(ctx context.Context, key string) error
}

func (m *Locker) Acquire(ctx context.Context, key string) error {
	if m.AcquireFn != nil {
		return m.AcquireFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held == nil {
		m.held = make(map[string]bool)
	}
	if m.held[key] {
		return lock.ErrHeld
	}
	m.held[key] = true
	return nil
}

func (m *Locker) Release(ctx context.Context, key string) error {
	if m.ReleaseFn != nil {
		return m.ReleaseFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, key)
	return nil
}
