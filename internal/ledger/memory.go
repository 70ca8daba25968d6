package ledger

import (
	"context"
	"sync"

	"github.com/wagerlab/predictgate/internal/domain"
)

// MemoryStore is a mutex-guarded in-memory Store. Used in dev mode and as
// the stateful fake for service-level tests.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]domain.LedgerRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]domain.LedgerRecord),
	}
}

func (s *MemoryStore) Get(ctx context.Context, playerID string) (*domain.LedgerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[playerID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore) Update(ctx context.Context, playerID string, fn UpdateFunc) (domain.LedgerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.records[playerID])
	s.records[playerID] = next
	return next, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() {}

// Seed inserts a record directly, bypassing the qualification engine.
// Test helper.
func (s *MemoryStore) Seed(playerID string, rec domain.LedgerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[playerID] = rec
}
