package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies effective from a given date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (e.g., UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // Base currency
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // Quote currency
	Rate             decimal.Decimal `json:"rate"`             // Precise decimal type
	DateEffective    time.Time       `json:"dateEffective"`
}
