package ledger

import "time"

// MinPlayerIDLength is the minimum accepted identifier length after trimming
const MinPlayerIDLength = 3

// Verification read cache sizing. The TTL is deliberately short: postbacks
// invalidate the local cache, but other instances only converge after expiry.
const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 5 * time.Second
)
