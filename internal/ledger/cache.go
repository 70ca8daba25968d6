package ledger

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/wagerlab/predictgate/internal/domain"
)

// recordCache is a short-TTL LRU in front of the store for login checks.
// Entries are invalidated locally on every accepted postback mutation, so a
// player who just deposited sees their new state immediately on this
// instance; other instances converge after the TTL.
type recordCache struct {
	lru *expirable.LRU[string, domain.LedgerRecord]
}

func newRecordCache(size int, ttl time.Duration) *recordCache {
	return &recordCache{
		lru: expirable.NewLRU[string, domain.LedgerRecord](size, nil, ttl),
	}
}

// Get retrieves a cached record. The miss return covers both "never cached"
// and "expired".
func (c *recordCache) Get(playerID string) (domain.LedgerRecord, bool) {
	return c.lru.Get(playerID)
}

// Set stores a record in the cache.
func (c *recordCache) Set(playerID string, rec domain.LedgerRecord) {
	c.lru.Add(playerID, rec)
}

// Invalidate removes a player's record from the cache after a mutation.
func (c *recordCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}
