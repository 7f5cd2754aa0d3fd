package cache

import (
	"sync"
	"time"
)

// entry stores a cached value with its absolute expiry.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is a key/value store where each entry expires a fixed duration after it was set.
// Expired entries are evicted lazily on Get; there is no background sweep and no size bound.
// It is safe for concurrent use.
type TTLCache[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[string]entry[V]
}

// Option configures a TTLCache.
type Option[V any] func(*TTLCache[V])

// WithClock replaces time.Now, mainly for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *TTLCache[V]) { c.now = now }
}

// New creates a TTLCache whose entries live for ttl.
func New[V any](ttl time.Duration, opts ...Option[V]) *TTLCache[V] {
	c := &TTLCache[V]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the lifetime given to new entries.
func (c *TTLCache[V]) TTL() time.Duration { return c.ttl }

// Get returns the value for key if it has not expired. An expired entry is removed.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	// check and evict under the same lock so a concurrent Set is never lost
	if !c.now().Before(e.expiresAt) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any existing entry.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.items[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Delete removes key.
func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
