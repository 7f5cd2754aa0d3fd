package cached

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/quote_pricing_app/internal/platform/cache"
	"golang.org/x/sync/singleflight"
)

// ExchangeRateRepository caches rate lookups per currency pair and UTC day.
type ExchangeRateRepository struct {
	store portsrepo.PricingStore
	cache *cache.TTLCache[domain.ExchangeRate]
	group singleflight.Group
}

// NewExchangeRateRepository creates an ExchangeRateRepository backed by store.
func NewExchangeRateRepository(store portsrepo.PricingStore, c *cache.TTLCache[domain.ExchangeRate]) *ExchangeRateRepository {
	return &ExchangeRateRepository{store: store, cache: c}
}

// FindRate returns the latest base->quote rate dated on or before at's day.
// Only the exact pair is considered; no inverse or cross rates are derived.
func (r *ExchangeRateRepository) FindRate(ctx context.Context, base, quote string, at time.Time) (*domain.ExchangeRate, error) {
	base = strings.ToUpper(base)
	quote = strings.ToUpper(quote)
	key := base + "|" + quote + "|" + dayKey(at)

	rate, err := readThrough(r.cache, &r.group, key, key, nil, func() (domain.ExchangeRate, error) {
		found, err := r.store.FindExchangeRate(ctx, base, quote, startOfDay(at))
		if err != nil {
			return domain.ExchangeRate{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

var _ portsrepo.ExchangeRateReader = (*ExchangeRateRepository)(nil)
