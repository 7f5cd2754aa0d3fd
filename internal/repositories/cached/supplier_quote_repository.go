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

// SupplierQuoteRepository selects the cheapest applicable supplier quote.
type SupplierQuoteRepository struct {
	store portsrepo.PricingStore
	cache *cache.TTLCache[domain.SupplierQuote]
	group singleflight.Group
}

// NewSupplierQuoteRepository creates a SupplierQuoteRepository backed by store.
func NewSupplierQuoteRepository(store portsrepo.PricingStore, c *cache.TTLCache[domain.SupplierQuote]) *SupplierQuoteRepository {
	return &SupplierQuoteRepository{store: store, cache: c}
}

// FindBestQuote returns the lowest priced quote that covers quantity in region at the given
// instant. Equal prices resolve to the lowest quote ID. Returns apperrors.ErrNotFound if none apply.
func (r *SupplierQuoteRepository) FindBestQuote(ctx context.Context, productID string, region *string, quantity int, at time.Time) (*domain.SupplierQuote, error) {
	key := fmt.Sprintf("%s|%s|%d|%s", productID, scopeKey(region), quantity, timeBucket(at, r.cache.TTL()))
	applies := func(q domain.SupplierQuote) bool { return q.Applies(region, quantity, at) }

	q, err := readThrough(r.cache, &r.group, key, key+"@"+instantKey(at), applies, func() (domain.SupplierQuote, error) {
		quotes, err := r.store.ListSupplierQuotes(ctx, portsrepo.SupplierQuoteFilter{
			ProductID: productID,
			Region:    region,
			Quantity:  quantity,
			At:        at,
		})
		if err != nil {
			return domain.SupplierQuote{}, err
		}

		var best *domain.SupplierQuote
		for i := range quotes {
			if !applies(quotes[i]) {
				continue
			}
			if best == nil || quotes[i].CheaperThan(*best) {
				best = &quotes[i]
			}
		}
		if best == nil {
			return domain.SupplierQuote{}, apperrors.NewNotFoundError("no supplier quote applies")
		}
		return *best, nil
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

var _ portsrepo.SupplierQuoteReader = (*SupplierQuoteRepository)(nil)
