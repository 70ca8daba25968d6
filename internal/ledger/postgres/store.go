// Package postgres implements the ledger store on PostgreSQL. Updates run
// inside a transaction with a row lock, so concurrent postbacks for the same
// player serialize at the database.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wagerlab/predictgate/internal/domain"
	"github.com/wagerlab/predictgate/internal/ledger"
)

// Store is a PostgreSQL-backed ledger.Store.
type Store struct {
	db *pgxpool.Pool
}

// New creates a Store on top of an existing connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, playerID string) (*domain.LedgerRecord, error) {
	var rec domain.LedgerRecord
	err := s.db.QueryRow(ctx,
		`SELECT registered, cumulative_deposit, predictions_left
		 FROM ledger_records WHERE player_id = $1`,
		playerID,
	).Scan(&rec.Registered, &rec.CumulativeDeposit, &rec.PredictionsLeft)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger record: %w", err)
	}
	return &rec, nil
}

// Update applies fn under SELECT ... FOR UPDATE. A missing row reads as the
// zero record and is inserted on write, so first-ever postbacks and updates
// share one code path.
func (s *Store) Update(ctx context.Context, playerID string, fn ledger.UpdateFunc) (domain.LedgerRecord, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domain.LedgerRecord{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var cur domain.LedgerRecord
	err = tx.QueryRow(ctx,
		`SELECT registered, cumulative_deposit, predictions_left
		 FROM ledger_records WHERE player_id = $1 FOR UPDATE`,
		playerID,
	).Scan(&cur.Registered, &cur.CumulativeDeposit, &cur.PredictionsLeft)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.LedgerRecord{}, fmt.Errorf("failed to lock ledger record: %w", err)
	}

	next := fn(cur)

	_, err = tx.Exec(ctx,
		`INSERT INTO ledger_records (player_id, registered, cumulative_deposit, predictions_left)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (player_id) DO UPDATE SET
		   registered = EXCLUDED.registered,
		   cumulative_deposit = EXCLUDED.cumulative_deposit,
		   predictions_left = EXCLUDED.predictions_left,
		   updated_at = NOW()`,
		playerID, next.Registered, next.CumulativeDeposit, next.PredictionsLeft,
	)
	if err != nil {
		return domain.LedgerRecord{}, fmt.Errorf("failed to write ledger record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.LedgerRecord{}, fmt.Errorf("failed to commit ledger update: %w", err)
	}

	return next, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() {
	s.db.Close()
}
