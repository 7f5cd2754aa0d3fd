package cached

import (
	"context"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/quote_pricing_app/internal/platform/cache"
	"golang.org/x/sync/singleflight"
)

// ProductRepository caches product lookups by SKU.
type ProductRepository struct {
	store portsrepo.PricingStore
	cache *cache.TTLCache[domain.Product]
	group singleflight.Group
}

// NewProductRepository creates a ProductRepository backed by store.
func NewProductRepository(store portsrepo.PricingStore, c *cache.TTLCache[domain.Product]) *ProductRepository {
	return &ProductRepository{store: store, cache: c}
}

// FindBySku returns the product with the given SKU or apperrors.ErrNotFound.
func (r *ProductRepository) FindBySku(ctx context.Context, sku string) (*domain.Product, error) {
	p, err := readThrough(r.cache, &r.group, "sku:"+sku, "sku:"+sku, nil, func() (domain.Product, error) {
		found, err := r.store.GetProductBySku(ctx, sku)
		if err != nil {
			return domain.Product{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var _ portsrepo.ProductReader = (*ProductRepository)(nil)
