package cached

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/quote_pricing_app/internal/platform/cache"
	"golang.org/x/sync/singleflight"
)

// CostOverrideRepository selects the negotiated cost in effect for a request.
type CostOverrideRepository struct {
	store portsrepo.PricingStore
	cache *cache.TTLCache[domain.CostOverride]
	group singleflight.Group
}

// NewCostOverrideRepository creates a CostOverrideRepository backed by store.
func NewCostOverrideRepository(store portsrepo.PricingStore, c *cache.TTLCache[domain.CostOverride]) *CostOverrideRepository {
	return &CostOverrideRepository{store: store, cache: c}
}

// FindApplicable returns the in-scope override with the latest EffectiveFrom, or apperrors.ErrNotFound.
func (r *CostOverrideRepository) FindApplicable(ctx context.Context, productID string, customer, region *string, at time.Time) (*domain.CostOverride, error) {
	key := fmt.Sprintf("%s|%s|%s|%s", productID, scopeKey(customer), scopeKey(region), timeBucket(at, r.cache.TTL()))
	applies := func(o domain.CostOverride) bool { return o.Applies(customer, region, at) }

	o, err := readThrough(r.cache, &r.group, key, key+"@"+instantKey(at), applies, func() (domain.CostOverride, error) {
		overrides, err := r.store.ListCostOverrides(ctx, portsrepo.CostOverrideFilter{
			ProductID: productID,
			Customer:  customer,
			Region:    region,
			At:        at,
		})
		if err != nil {
			return domain.CostOverride{}, err
		}

		var newest *domain.CostOverride
		for i := range overrides {
			if !applies(overrides[i]) {
				continue
			}
			if newest == nil || overrides[i].NewerThan(*newest) {
				newest = &overrides[i]
			}
		}
		if newest == nil {
			return domain.CostOverride{}, apperrors.NewNotFoundError("no cost override applies")
		}
		return *newest, nil
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

var _ portsrepo.CostOverrideReader = (*CostOverrideRepository)(nil)
