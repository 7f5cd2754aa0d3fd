package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
)

// SupplierQuoteFilter selects supplier quotes for a product that cover Quantity at At.
type SupplierQuoteFilter struct {
	ProductID string
	Region    *string
	Quantity  int
	At        time.Time
}

// CostOverrideFilter selects cost overrides for a product in effect at At.
type CostOverrideFilter struct {
	ProductID string
	Customer  *string
	Region    *string
	At        time.Time
}

// PricingStore is the read-only query surface of the persistent record store.
// Absent single records are reported as apperrors.ErrNotFound; list queries
// return an empty slice.
type PricingStore interface {
	HealthChecker

	// GetProductBySku retrieves a product by its unique SKU.
	GetProductBySku(ctx context.Context, sku string) (*domain.Product, error)

	// ListSupplierQuotes returns quotes matching the filter ordered by ascending unit price.
	ListSupplierQuotes(ctx context.Context, filter SupplierQuoteFilter) ([]domain.SupplierQuote, error)

	// ListCostOverrides returns overrides matching the filter ordered by descending effective date.
	ListCostOverrides(ctx context.Context, filter CostOverrideFilter) ([]domain.CostOverride, error)

	// FindExchangeRate returns the latest rate for base->quote dated on or before at.
	FindExchangeRate(ctx context.Context, base, quote string, at time.Time) (*domain.ExchangeRate, error)
}
