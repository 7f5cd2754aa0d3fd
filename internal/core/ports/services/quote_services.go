package services

import (
	"context"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
)

// PricingSvc prices a single, already validated quote request.
type PricingSvc interface {
	// Price computes the quote for input.
	Price(ctx context.Context, input domain.QuoteInput) (*domain.QuoteResult, error)
}

// QuoteReaderSvc defines the single-quote operation
type QuoteReaderSvc interface {
	// Quote validates and prices one request.
	Quote(ctx context.Context, input domain.QuoteInput) (*domain.QuoteResult, error)
}

// QuoteBatchSvc defines the batch operation
type QuoteBatchSvc interface {
	// QuoteBatch prices every input, returning one item per input in the same order.
	QuoteBatch(ctx context.Context, inputs []domain.QuoteInput) ([]domain.BatchItem, error)
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteBatchSvc
}
