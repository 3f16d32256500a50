package token

import (
	"context"
	"errors"
)

// ErrTransferFailed is returned when the token service declines or fails a
// transfer. The calling operation must abort atomically.
var ErrTransferFailed = errors.New("token transfer failed")

// Transferer moves value between parties with allowance pre-authorization
// (transferFrom semantics). The core never sees balances, only the outcome.
type Transferer interface {
	TransferFrom(ctx context.Context, tokenRef, owner, recipient string, amount int64) error
}
