package tokenmock

import (
	"context"

	"peerlend/internal/domain/token"
)

var _ token.Transferer = (*Transferer)(nil)

// Transfer records one TransferFrom invocation.
type Transfer struct {
	Token     string
	Owner     string
	Recipient string
	Amount    int64
}

// Transferer is a function-backed mock that satisfies token.Transferer and
// records every attempted transfer.
type Transferer struct {
	TransferFromFn func(ctx context.Context, tokenRef, owner, recipient string, amount int64) error

	Transfers []Transfer
}

func (m *Transferer) TransferFrom(ctx context.Context, tokenRef, owner, recipient string, amount int64) error {
	m.Transfers = append(m.Transfers, Transfer{Token: tokenRef, Owner: owner, Recipient: recipient, Amount: amount})
	if m.TransferFromFn != nil {
		return m.TransferFromFn(ctx, tokenRef, owner, recipient, amount)
	}
	return nil
}
