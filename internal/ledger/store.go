package ledger

import (
	"context"

	"github.com/wagerlab/predictgate/internal/domain"
)

// UpdateFunc transforms a ledger record during an atomic update. It must be
// pure: backends with optimistic concurrency may call it more than once.
type UpdateFunc func(rec domain.LedgerRecord) domain.LedgerRecord

// Store persists ledger records keyed by player identifier.
//
// Records are implicitly created with zero values: Get returns nil (not an
// error) for players that have never been written, and Update hands fn the
// zero record in that case. Each backend makes the read-modify-write atomic
// per player (mutex, optimistic transaction, or row lock) so concurrent
// deposit events for the same player cannot lose increments.
type Store interface {
	// Get returns the record for a player, or nil when absent.
	Get(ctx context.Context, playerID string) (*domain.LedgerRecord, error)

	// Update atomically applies fn to the player's current record and
	// persists the result, returning the stored record.
	Update(ctx context.Context, playerID string, fn UpdateFunc) (domain.LedgerRecord, error)

	// Ping reports backend connectivity for readiness checks.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close()
}
