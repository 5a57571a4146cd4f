package squadron

import (
	"context"
	"sync"
	"time"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheKey = "callsigns"

// Cache serves call-sign sets from memory for up to ttl after a successful
// lookup. Failed lookups are not cached.
type Cache struct {
	src Source
	lru *expirable.LRU[string, []models.SquadronCallsigns]
	mu  sync.Mutex
}

var _ Source = (*Cache)(nil)

// NewCache wraps src with a cache whose entries live for ttl
func NewCache(src Source, ttl time.Duration) *Cache {
	return &Cache{
		src: src,
		lru: expirable.NewLRU[string, []models.SquadronCallsigns](1, nil, ttl),
	}
}

func (c *Cache) Callsigns(ctx context.Context) ([]models.SquadronCallsigns, error) {
	if sets, ok := c.lru.Get(cacheKey); ok {
		return sets, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have filled it while we waited
	if sets, ok := c.lru.Get(cacheKey); ok {
		return sets, nil
	}

	sets, err := c.src.Callsigns(ctx)
	if err != nil {
		return nil, err
	}
	c.lru.Add(cacheKey, sets)
	return sets, nil
}

// Invalidate drops the cached sets so the next lookup reads the source
func (c *Cache) Invalidate() {
	c.lru.Purge()
}
