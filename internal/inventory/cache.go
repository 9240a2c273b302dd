package inventory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gameworld/gameworld/internal/domain"
)

const (
	catalogCacheSize = 1024
	catalogCacheTTL  = 10 * time.Minute
)

// catalogCache is an in-memory LRU for item catalog lookups. The catalog is
// static reference data, so entries only need a TTL to pick up out-of-band
// catalog changes.
type catalogCache struct {
	lru *expirable.LRU[int, *domain.Item]
}

func newCatalogCache() *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[int, *domain.Item](catalogCacheSize, nil, catalogCacheTTL),
	}
}

// Get retrieves a catalog entry from the cache.
func (c *catalogCache) Get(itemID int) (*domain.Item, bool) {
	return c.lru.Get(itemID)
}

// Set stores a catalog entry in the cache.
func (c *catalogCache) Set(item *domain.Item) {
	c.lru.Add(item.ID, item)
}
