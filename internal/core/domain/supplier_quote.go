package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierQuote is a standing supplier offer valid for a quantity band and a time window.
type SupplierQuote struct {
	SupplierQuoteID string          `json:"supplierQuoteID"` // Primary Key
	ProductID       string          `json:"productID"`       // FK -> Product.productID
	Supplier        string          `json:"supplier"`
	Region          *string         `json:"region"` // Nullable; nil means any region
	CurrencyCode    string          `json:"currencyCode"`
	MinQty          int             `json:"minQty"`
	MaxQty          *int            `json:"maxQty"` // Nullable; nil means unbounded
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	EffectiveFrom   time.Time       `json:"effectiveFrom"`
	EffectiveTo     *time.Time      `json:"effectiveTo"` // Nullable; nil means open-ended
}

// Applies reports whether the quote can price quantity units for region at the given instant.
// A request without a region is served by quotes of any region.
func (q SupplierQuote) Applies(region *string, quantity int, at time.Time) bool {
	if quantity < q.MinQty {
		return false
	}
	if q.MaxQty != nil && quantity > *q.MaxQty {
		return false
	}
	if region != nil && !scopeMatches(q.Region, region) {
		return false
	}
	return inWindow(q.EffectiveFrom, q.EffectiveTo, at)
}

// CheaperThan orders quotes by ascending unit price, then by ID.
func (q SupplierQuote) CheaperThan(other SupplierQuote) bool {
	if c := q.UnitPrice.Cmp(other.UnitPrice); c != 0 {
		return c < 0
	}
	return q.SupplierQuoteID < other.SupplierQuoteID
}

// inWindow reports whether from <= at <= to, where a nil to is unbounded.
func inWindow(from time.Time, to *time.Time, at time.Time) bool {
	if at.Before(from) {
		return false
	}
	return to == nil || !at.After(*to)
}

// scopeMatches reports whether a record scoped to scope serves a request for requested.
// An unscoped record serves everyone; a scoped one only the exact same value.
func scopeMatches(scope, requested *string) bool {
	if scope == nil {
		return true
	}
	return requested != nil && *scope == *requested
}
