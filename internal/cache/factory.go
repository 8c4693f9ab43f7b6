package cache

import (
	"github.com/smart-parking/console/config"
)

// NewFromConfig creates a cache from cfg.Cache; a zero TTL disables caching.
func NewFromConfig(cfg *config.Config) *Cache {
	return New(cfg.Cache.TTL)
}
