package domain

import "time"

// CostSource names the record type a quote was priced from.
type CostSource string

const (
	CostSourceOverride      CostSource = "override"
	CostSourceSupplierQuote CostSource = "supplierQuote"
)

// AdjustmentType distinguishes rule adjustments that lower or raise a subtotal.
type AdjustmentType string

const (
	Discount  AdjustmentType = "discount"
	Surcharge AdjustmentType = "surcharge"
)

// QuoteInput is a request to price Quantity units of SKU.
type QuoteInput struct {
	SKU            string     `json:"sku" validate:"required,max=64"`
	Quantity       int        `json:"quantity" validate:"gt=0"`
	Region         *string    `json:"region,omitempty" validate:"omitempty,min=1,max=32"`
	Customer       *string    `json:"customer,omitempty" validate:"omitempty,min=1,max=128"`
	TargetCurrency *string    `json:"targetCurrency,omitempty" validate:"omitempty,len=3,alpha"`
	At             *time.Time `json:"at,omitempty"`
}

// ExchangeConversion records the rate applied to convert a subtotal.
type ExchangeConversion struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Rate  string `json:"rate"`
}

// CostBreakdown describes the chosen cost source and the subtotal derived from it.
type CostBreakdown struct {
	Source   CostSource          `json:"source"`
	Currency string              `json:"currency"`
	UnitCost string              `json:"unitCost"`
	Quantity int                 `json:"quantity"`
	Subtotal string              `json:"subtotal"`
	Exchange *ExchangeConversion `json:"exchange,omitempty"`
}

// RuleAdjustment is a named discount or surcharge applied by the rule engine.
type RuleAdjustment struct {
	Name   string         `json:"name"`
	Type   AdjustmentType `json:"type"`
	Amount string         `json:"amount"`
}

// QuoteBreakdown carries the provenance of a quote.
type QuoteBreakdown struct {
	Cost            CostBreakdown    `json:"cost"`
	RuleAdjustments []RuleAdjustment `json:"ruleAdjustments"`
}

// QuoteResult is a priced quote. Monetary amounts are 2-decimal strings.
type QuoteResult struct {
	SKU        string         `json:"sku"`
	Quantity   int            `json:"quantity"`
	Currency   string         `json:"currency"`
	UnitPrice  string         `json:"unitPrice"`
	TotalPrice string         `json:"totalPrice"`
	Breakdown  QuoteBreakdown `json:"breakdown"`
}

// ErrorDescriptor is the per-item error reported in a batch. Kind is serialized as
// "code" so batch items and the top-level error envelope share one shape.
type ErrorDescriptor struct {
	Kind    string `json:"code"`
	Message string `json:"message"`
}

// BatchItem holds exactly one of Result or Error for the input at Index.
type BatchItem struct {
	Index  int              `json:"index"`
	Result *QuoteResult     `json:"result,omitempty"`
	Error  *ErrorDescriptor `json:"error,omitempty"`
}
