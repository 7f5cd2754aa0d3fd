package dto

import (
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
)

// QuoteRequest is the body of a single quote request.
// Field rules are enforced by the quote service so batch items fail individually.
type QuoteRequest struct {
	SKU            string     `json:"sku"`
	Quantity       int        `json:"quantity"`
	Region         *string    `json:"region,omitempty"`
	Customer       *string    `json:"customer,omitempty"`
	TargetCurrency *string    `json:"targetCurrency,omitempty"`
	At             *time.Time `json:"at,omitempty"` // RFC 3339
}

// ToDomain converts the request into a domain.QuoteInput.
func (r QuoteRequest) ToDomain() domain.QuoteInput {
	return domain.QuoteInput{
		SKU:            r.SKU,
		Quantity:       r.Quantity,
		Region:         r.Region,
		Customer:       r.Customer,
		TargetCurrency: r.TargetCurrency,
		At:             r.At,
	}
}

// BatchQuoteRequest is the body of a batch quote request.
type BatchQuoteRequest struct {
	Items []QuoteRequest `json:"items"`
}

// ToDomain converts every item, preserving order.
func (r BatchQuoteRequest) ToDomain() []domain.QuoteInput {
	inputs := make([]domain.QuoteInput, len(r.Items))
	for i, item := range r.Items {
		inputs[i] = item.ToDomain()
	}
	return inputs
}

// QuoteResponse wraps a single quote.
type QuoteResponse struct {
	TraceID string              `json:"traceId"`
	Data    *domain.QuoteResult `json:"data"`
}

// BatchQuoteResponse wraps per-item batch outcomes in input order.
type BatchQuoteResponse struct {
	TraceID string             `json:"traceId"`
	Data    []domain.BatchItem `json:"data"`
}

// ErrorBody is the machine-readable part of an error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	TraceID string    `json:"traceId"`
	Error   ErrorBody `json:"error"`
}

// HealthResponse reports liveness, and store reachability for the deep check.
type HealthResponse struct {
	Status    string    `json:"status"`
	DB        *bool     `json:"db,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
