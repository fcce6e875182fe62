package ports

import "context"

// WalletUpdate represents a single honor change for a user.
type WalletUpdate struct {
	UserID   string
	Amount   int64
	Metadata map[string]interface{}
}

// EconomyPort defines the interface for the persistent honor ledger. Honor is
// the cross-match currency; meat gathered inside a game never leaves it.
type EconomyPort interface {
	// GetBalance retrieves the current honor balance for a user.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// UpdateBalances applies multiple honor changes.
	// Used to settle the victory award when a game ends.
	UpdateBalances(ctx context.Context, updates []WalletUpdate) error
}
