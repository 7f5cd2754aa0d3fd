package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*cache.TTLCache[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return cache.New[string](ttl, cache.WithClock[string](clock.Now)), clock
}

func TestTTLCache_GetAfterSetWithinTTL(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)

	c.Set("k", "v1")
	clock.Advance(29 * time.Second)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", got)
}

func TestTTLCache_ExpiredEntryIsEvicted(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)

	c.Set("k", "v1")
	clock.Advance(30 * time.Second)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should no longer occupy the store")
}

func TestTTLCache_ExpiredEntryStaysUntilRead(t *testing.T) {
	c, clock := newTestCache(time.Second)

	c.Set("a", "1")
	c.Set("b", "2")
	clock.Advance(2 * time.Second)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestTTLCache_SetOverwritesAndRefreshesExpiry(t *testing.T) {
	c, clock := newTestCache(10 * time.Second)

	c.Set("k", "old")
	clock.Advance(8 * time.Second)
	c.Set("k", "new")
	clock.Advance(8 * time.Second)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestTTLCache_DeleteAndClear(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestTTLCache_ZeroTTLNeverHits(t *testing.T) {
	c, _ := newTestCache(0)

	c.Set("k", "v")
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := cache.New[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("shared", i)
			_, _ = c.Get("shared")
		}(i)
	}
	wg.Wait()

	_, ok := c.Get("shared")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}
