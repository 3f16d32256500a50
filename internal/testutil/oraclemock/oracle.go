package oraclemock

import (
	"context"

	"peerlend/internal/domain/oracle"
)

var _ oracle.ProofOracle = (*Oracle)(nil)

// Oracle is a function-backed mock that satisfies oracle.ProofOracle. The
// default answers are negative: an unconfigured oracle never verifies.
type Oracle struct {
	ProofStatusFn func(ctx context.Context, subject, requestID string) (bool, error)
	VerifyFn      func(ctx context.Context, verifierRef, presentation string) (bool, error)

	// Calls records (ref) pairs in invocation order for order-sensitivity
	// assertions.
	Calls []string
}

func (m *Oracle) ProofStatus(ctx context.Context, subject, requestID string) (bool, error) {
	m.Calls = append(m.Calls, requestID)
	if m.ProofStatusFn != nil {
		return m.ProofStatusFn(ctx, subject, requestID)
	}
	return false, nil
}

func (m *Oracle) Verify(ctx context.Context, verifierRef, presentation string) (bool, error) {
	m.Calls = append(m.Calls, verifierRef)
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, verifierRef, presentation)
	}
	return false, nil
}
