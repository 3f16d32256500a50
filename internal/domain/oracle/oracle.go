package oracle

import "context"

// ProofOracle answers whether a subject satisfies a proof requirement. The
// core only reads from it; verification state is owned by the external
// verifier service.
type ProofOracle interface {
	// ProofStatus reports whether subject completed a prior verification for
	// requestID (status-lookup strategy).
	ProofStatus(ctx context.Context, subject, requestID string) (bool, error)
	// Verify checks one supplied presentation against a verifier reference
	// (presentation-submission strategy).
	Verify(ctx context.Context, verifierRef, presentation string) (bool, error)
}
