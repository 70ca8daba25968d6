// Package redisstore implements the ledger store on Redis. Records live as
// JSON values under player-scoped keys; concurrent updates are serialized
// with optimistic WATCH transactions.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wagerlab/predictgate/internal/domain"
	"github.com/wagerlab/predictgate/internal/ledger"
)

const (
	keyPrefix = "player:"

	// maxTxRetries bounds the optimistic retry loop under write contention
	// on the same player key.
	maxTxRetries = 5
)

// Store is a Redis-backed ledger.Store.
type Store struct {
	client *redis.Client
}

// New creates a Store against the given Redis address.
func New(addr, password string, db int) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		PoolSize:     10,
		MinIdleConns: 2,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	return &Store{client: client}
}

func key(playerID string) string {
	return keyPrefix + playerID
}

func (s *Store) Get(ctx context.Context, playerID string) (*domain.LedgerRecord, error) {
	data, err := s.client.Get(ctx, key(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var rec domain.LedgerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("corrupt ledger record for %s: %w", playerID, err)
	}
	return &rec, nil
}

// Update applies fn under a WATCH transaction. If another writer touches the
// key between read and write the transaction aborts and fn is re-applied to
// the fresh state, up to maxTxRetries attempts.
func (s *Store) Update(ctx context.Context, playerID string, fn ledger.UpdateFunc) (domain.LedgerRecord, error) {
	k := key(playerID)
	var result domain.LedgerRecord

	txn := func(tx *redis.Tx) error {
		var cur domain.LedgerRecord
		data, err := tx.Get(ctx, k).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			if err := json.Unmarshal(data, &cur); err != nil {
				return fmt.Errorf("corrupt ledger record for %s: %w", playerID, err)
			}
		}

		next := fn(cur)
		encoded, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, encoded, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txn, k)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return domain.LedgerRecord{}, fmt.Errorf("redis update: %w", err)
	}

	return domain.LedgerRecord{}, fmt.Errorf("%w: player %s", domain.ErrRecordConflict, playerID)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() {
	_ = s.client.Close()
}
