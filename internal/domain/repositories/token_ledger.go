package repositories

import (
	"context"
)

// TokenLedger is the token transfer primitive the marketplace runs on.
// Accounts are keyed by (owner, mint); custody accounts for pools and
// escrows use the owning record's derived authority as their owner, so a
// transfer out of custody only succeeds when the caller presents that
// authority.
type TokenLedger interface {
	// EnsureAccount creates the (owner, mint) account if it does not exist
	EnsureAccount(ctx context.Context, owner, mint string) error
	// Balance returns the current balance of the (owner, mint) account
	Balance(ctx context.Context, owner, mint string) (uint64, error)
	// Transfer moves amount from one owner's account to another under the
	// given authority; the authority must match the source account's owner
	Transfer(ctx context.Context, from, to, mint, authority string, amount uint64) error
	// Deposit credits freshly issued units to the (owner, mint) account
	Deposit(ctx context.Context, owner, mint string, amount uint64) error
}
