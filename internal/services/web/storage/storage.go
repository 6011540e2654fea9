package storage

import (
	"context"
	"time"
)

// CacheEntry stores one cached payload and its freshness window.
//
// Cache data is always derived and can be discarded and rebuilt from
// upstream reads.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	CheckedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the entry is past its expiry at now. Entries
// without an expiry never expire.
func (e CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// Store is the contract for web cache persistence.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
