// Package mjcache provides the two cache tiers the engine and tenhou
// packages share: an in-process ristretto cache for hot, process-local
// data (the engine Searcher's WaitSet results) and a redis-backed
// distributed cache for state that must survive a process restart or be
// shared across processes (the tenhou Archive's record lookups).
package mjcache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Local is a bounded, TTL-aware in-process cache.
type Local struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewLocal builds a Local cache with the given cost budget (in the same
// units as the cost passed to Set) and default entry TTL.
func NewLocal(maxCost int64, ttl time.Duration) (*Local, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("mjcache: new local cache: %w", err)
	}
	return &Local{cache: cache, ttl: ttl}, nil
}

// Set stores value under key using the cache's default TTL. cost is an
// opaque weight (1 is fine for small fixed-size values like a WaitSet).
func (c *Local) Set(key string, value any, cost int64) bool {
	return c.cache.SetWithTTL(key, value, cost, c.ttl)
}

// Get retrieves the value stored under key, if present and unexpired.
func (c *Local) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Delete evicts key.
func (c *Local) Delete(key string) {
	c.cache.Del(key)
}

// Close releases the cache's background goroutines.
func (c *Local) Close() {
	c.cache.Close()
}
