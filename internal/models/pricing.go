package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors a row of the products table.
type Product struct {
	ProductID    string    `json:"productID"` // Primary Key (UUID)
	SKU          string    `json:"sku"`       // Unique
	Name         string    `json:"name"`
	BaseCurrency string    `json:"baseCurrency"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SupplierQuote mirrors a row of the supplier_quotes table.
type SupplierQuote struct {
	SupplierQuoteID string          `json:"supplierQuoteID"` // Primary Key (UUID)
	ProductID       string          `json:"productID"`       // FK -> products.product_id
	Supplier        string          `json:"supplier"`
	Region          *string         `json:"region"` // Nullable
	CurrencyCode    string          `json:"currencyCode"`
	MinQty          int             `json:"minQty"`
	MaxQty          *int            `json:"maxQty"` // Nullable
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	EffectiveFrom   time.Time       `json:"effectiveFrom"`
	EffectiveTo     *time.Time      `json:"effectiveTo"` // Nullable
}

// CostOverride mirrors a row of the cost_overrides table.
type CostOverride struct {
	CostOverrideID string          `json:"costOverrideID"` // Primary Key (UUID)
	ProductID      string          `json:"productID"`      // FK -> products.product_id
	Customer       *string         `json:"customer"`       // Nullable
	Region         *string         `json:"region"`         // Nullable
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	CurrencyCode   string          `json:"currencyCode"`
	EffectiveFrom  time.Time       `json:"effectiveFrom"`
	EffectiveTo    *time.Time      `json:"effectiveTo"` // Nullable
}

// ExchangeRate stores the conversion rate between two currencies for a specific date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // Base currency
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // Quote currency
	Rate             decimal.Decimal `json:"rate"`             // Precise decimal type
	DateEffective    time.Time       `json:"dateEffective"`    // DATE column
}
