package lock

import (
	"context"
	"errors"
)

// ErrHeld is returned when a guarded operation is re-entered while the guard
// is still held.
var ErrHeld = errors.New("settlement already in progress")

// Locker is the mutual-exclusion guard wrapped around settlement operations.
// Acquire fails fast with ErrHeld instead of blocking; Release must be called
// unconditionally on exit so a later call can proceed.
type Locker interface {
	Acquire(ctx context.Context, key string) error
	Release(ctx context.Context, key string) error
}
