package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostOverride is a negotiated unit cost that supersedes supplier quotes
// for an optional customer and region scope.
type CostOverride struct {
	CostOverrideID string          `json:"costOverrideID"` // Primary Key
	ProductID      string          `json:"productID"`      // FK -> Product.productID
	Customer       *string         `json:"customer"`       // Nullable; nil means any customer
	Region         *string         `json:"region"`         // Nullable; nil means any region
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	CurrencyCode   string          `json:"currencyCode"`
	EffectiveFrom  time.Time       `json:"effectiveFrom"`
	EffectiveTo    *time.Time      `json:"effectiveTo"` // Nullable; nil means open-ended
}

// Applies reports whether the override is in scope for customer and region at the given instant.
func (o CostOverride) Applies(customer, region *string, at time.Time) bool {
	return scopeMatches(o.Customer, customer) &&
		scopeMatches(o.Region, region) &&
		inWindow(o.EffectiveFrom, o.EffectiveTo, at)
}

// NewerThan orders overrides by descending EffectiveFrom, then by ID.
func (o CostOverride) NewerThan(other CostOverride) bool {
	if !o.EffectiveFrom.Equal(other.EffectiveFrom) {
		return o.EffectiveFrom.After(other.EffectiveFrom)
	}
	return o.CostOverrideID < other.CostOverrideID
}
