package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
)

// ProductReader looks up catalog products.
type ProductReader interface {
	// FindBySku retrieves a product by SKU.
	FindBySku(ctx context.Context, sku string) (*domain.Product, error)
}

// SupplierQuoteReader selects supplier quotes.
type SupplierQuoteReader interface {
	// FindBestQuote returns the cheapest quote covering quantity at the given instant.
	FindBestQuote(ctx context.Context, productID string, region *string, quantity int, at time.Time) (*domain.SupplierQuote, error)
}

// ExchangeRateReader looks up currency conversion rates.
type ExchangeRateReader interface {
	// FindRate returns the latest base->quote rate dated on or before at.
	FindRate(ctx context.Context, base, quote string, at time.Time) (*domain.ExchangeRate, error)
}

// CostOverrideReader selects negotiated cost overrides.
type CostOverrideReader interface {
	// FindApplicable returns the most recently effective override in scope at the given instant.
	FindApplicable(ctx context.Context, productID string, customer, region *string, at time.Time) (*domain.CostOverride, error)
}
