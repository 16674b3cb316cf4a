package pricing

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// resultCache holds efficiency results keyed by dataset version and request.
// A dataset mutation bumps the version, so stale entries are never looked up
// again and age out of the LRU.
type resultCache struct {
	lru *expirable.LRU[string, domain.EfficiencyResult]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &resultCache{
		lru: expirable.NewLRU[string, domain.EfficiencyResult](size, nil, ttl),
	}
}

func cacheKey(version uint64, item string, reward float64, mode domain.EfficiencyMode) string {
	return fmt.Sprintf("%d|%s|%g|%s", version, mode, reward, item)
}

// Get returns a copy of the cached result so callers cannot alter the cached value
func (c *resultCache) Get(key string) (*domain.EfficiencyResult, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return copyResult(entry), true
}

func (c *resultCache) Set(key string, result *domain.EfficiencyResult) {
	c.lru.Add(key, *copyResult(*result))
}

func (c *resultCache) Len() int {
	return c.lru.Len()
}

func copyResult(r domain.EfficiencyResult) *domain.EfficiencyResult {
	if r.Round != nil {
		round := *r.Round
		r.Round = &round
	}
	return &r
}
