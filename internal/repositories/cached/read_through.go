package cached

import (
	"fmt"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/platform/cache"
	"golang.org/x/sync/singleflight"
)

// readThrough returns the cached value for key, loading and caching it on a miss.
// A cached value that fails valid is treated as a miss; a nil valid accepts every value.
// Concurrent loads sharing flightKey run once, so flightKey must identify everything
// load depends on. Failed loads, including not-found, are never cached.
func readThrough[V any](c *cache.TTLCache[V], group *singleflight.Group, key, flightKey string, valid func(V) bool, load func() (V, error)) (V, error) {
	usable := func(v V) bool { return valid == nil || valid(v) }

	if v, ok := c.Get(key); ok && usable(v) {
		return v, nil
	}
	res, err, _ := group.Do(flightKey, func() (any, error) {
		if v, ok := c.Get(key); ok && usable(v) {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// scopeKey renders an optional scope value, keeping nil distinct from any string.
func scopeKey(s *string) string {
	if s == nil {
		return "-"
	}
	return "=" + *s
}

// timeBucket truncates at to the cache TTL width. Two lookups share a cached
// answer only if their instants fall into the same bucket and the answer still
// applies at the later instant.
func timeBucket(at time.Time, ttl time.Duration) string {
	if ttl <= 0 {
		return fmt.Sprintf("%d", at.UnixNano())
	}
	return fmt.Sprintf("%d", at.UTC().Truncate(ttl).UnixNano())
}

// instantKey renders at exactly, for coalescing loads of the same request.
func instantKey(at time.Time) string {
	return fmt.Sprintf("%d", at.UnixNano())
}

// dayKey truncates at to its UTC calendar day.
func dayKey(at time.Time) string {
	return at.UTC().Format(time.DateOnly)
}

// startOfDay returns midnight UTC of at's calendar day.
func startOfDay(at time.Time) time.Time {
	return at.UTC().Truncate(24 * time.Hour)
}
