package catalog

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/sync/singleflight"

	"github.com/minios-linux/i18nstr/i18nstr"
)

// Cache memoizes another resolver. Resolvers are pure, so a cached answer
// is always the answer the wrapped resolver would give. Concurrent misses
// for the same body reach the wrapped resolver once.
type Cache struct {
	next  i18nstr.Resolver
	cache *ristretto.Cache[string, string]
	group singleflight.Group
}

// Cached wraps r with a cache of roughly maxItems entries.
func Cached(r i18nstr.Resolver, maxItems int64) (*Cache, error) {
	if maxItems <= 0 {
		maxItems = 1000
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
		// Every entry costs 1, so MaxCost is an entry count.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating resolver cache: %w", err)
	}
	if r == nil {
		r = i18nstr.NoResolver
	}
	return &Cache{next: r, cache: cache}, nil
}

// Resolve implements i18nstr.Resolver.
func (c *Cache) Resolve(body string) string {
	if v, ok := c.cache.Get(body); ok {
		return v
	}
	v, _, _ := c.group.Do(body, func() (any, error) {
		v := c.next.Resolve(body)
		c.cache.Set(body, v, 1)
		return v, nil
	})
	return v.(string)
}

// Wait blocks until pending cache writes are applied.
func (c *Cache) Wait() { c.cache.Wait() }

// Close releases the cache.
func (c *Cache) Close() { c.cache.Close() }
