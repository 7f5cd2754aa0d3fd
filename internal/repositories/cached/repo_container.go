package cached

import (
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/quote_pricing_app/internal/platform/cache"
)

// NewRepositoryProvider wraps store with one cache per repository, each living for ttl.
func NewRepositoryProvider(store portsrepo.PricingStore, ttl time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:       NewProductRepository(store, cache.New[domain.Product](ttl)),
		SupplierQuoteRepo: NewSupplierQuoteRepository(store, cache.New[domain.SupplierQuote](ttl)),
		ExchangeRateRepo:  NewExchangeRateRepository(store, cache.New[domain.ExchangeRate](ttl)),
		CostOverrideRepo:  NewCostOverrideRepository(store, cache.New[domain.CostOverride](ttl)),
		Health:            store,
	}
}
