// Package cache keeps recently computed aggregates in memory for a short time
// so that many dashboards polling together cost one round of queries.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CleanupInterval is how often expired entries are removed.
const CleanupInterval = 30 * time.Second

// Cache wraps patrickmn/go-cache with a single TTL for every entry.
type Cache struct {
	store *gocache.Cache
	ttl   time.Duration
}

// New returns a cache whose entries live for ttl. A zero ttl disables it.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, CleanupInterval),
		ttl:   ttl,
	}
}

// Set is a no-op when caching is disabled.
func (c *Cache) Set(key string, value interface{}) {
	if !c.IsEnabled() {
		return
	}

	c.store.Set(key, value, c.ttl)
}

// Get returns the value and true if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	if !c.IsEnabled() {
		return nil, false
	}

	return c.store.Get(key)
}

// IsEnabled -.
func (c *Cache) IsEnabled() bool {
	return c != nil && c.ttl > 0
}

// Delete -.
func (c *Cache) Delete(key string) {
	if c != nil {
		c.store.Delete(key)
	}
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	if c != nil {
		c.store.Flush()
	}
}
