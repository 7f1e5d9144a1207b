package cache

import (
	"fmt"
	"fxdash/internal/series"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoChartCache memoizes chart models built from identical series and quote lists.
type RistrettoChartCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewChartCache(maxItems int64, ttl time.Duration) (*RistrettoChartCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create chart cache failed: %w", err)
	}
	return &RistrettoChartCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoChartCache) Get(key string) (series.ChartModel, bool) {
	if v, ok := c.cache.Get(key); ok {
		m, ok := v.(series.ChartModel)
		return m, ok
	}
	return series.ChartModel{}, false
}

func (c *RistrettoChartCache) Set(key string, model series.ChartModel) {
	if c.ttl > 0 {
		c.cache.SetWithTTL(key, model, 1, c.ttl)
		return
	}
	c.cache.Set(key, model, 1)
}

func (c *RistrettoChartCache) Close() { c.cache.Close() }
