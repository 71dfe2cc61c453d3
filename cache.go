package etfwatch

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a short-TTL in-memory result cache keyed by (operation, arguments).
// It is injected into the pipelines rather than accessed as a global, and the
// whole cache can be dropped at once by the user-facing refresh action.
// Entries are computed idempotently so a last-writer-wins fill race is
// harmless, only wasteful.
type Cache struct {
	store *gocache.Cache
}

// NewCache returns a cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{store: gocache.New(ttl, 2*ttl)}
}

// Clear drops every entry. There is no partial invalidation.
func (c *Cache) Clear() {
	if c != nil {
		c.store.Flush()
	}
}

// Key builds a cache key from an operation identity and its arguments.
func Key(op string, args ...string) string {
	return op + "(" + strings.Join(args, ",") + ")"
}

// Cached returns the fresh cached value for key, or computes, stores and
// returns it. Errors are never cached. A nil cache computes every time.
func Cached[T any](c *Cache, key string, compute func() (T, error)) (T, error) {
	if c == nil {
		return compute()
	}
	if v, ok := c.store.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	c.store.SetDefault(key, v)
	return v, nil
}
