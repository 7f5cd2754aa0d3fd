package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/quote_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/quote_pricing_app/internal/metrics"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultBatchConcurrency bounds simultaneously priced batch items.
	DefaultBatchConcurrency = 5
	// DefaultMaxBatchItems bounds the number of items in one batch request.
	DefaultMaxBatchItems = 100
)

// QuoteService validates quote requests and drives them through the pricing engine,
// one at a time or as a bounded-concurrency batch.
type QuoteService struct {
	BaseService
	pricing     portssvc.PricingSvc
	validate    *validator.Validate
	concurrency int
	maxItems    int
	metrics     *metrics.Metrics
}

// QuoteOption configures a QuoteService.
type QuoteOption func(*QuoteService)

// WithBatchConcurrency sets how many batch items may be priced at once.
func WithBatchConcurrency(n int) QuoteOption {
	return func(s *QuoteService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithMaxBatchItems sets the largest accepted batch.
func WithMaxBatchItems(n int) QuoteOption {
	return func(s *QuoteService) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// WithMetrics records quote outcomes on m.
func WithMetrics(m *metrics.Metrics) QuoteOption {
	return func(s *QuoteService) { s.metrics = m }
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(pricing portssvc.PricingSvc, opts ...QuoteOption) *QuoteService {
	s := &QuoteService{
		pricing:     pricing,
		validate:    newQuoteValidator(),
		concurrency: DefaultBatchConcurrency,
		maxItems:    DefaultMaxBatchItems,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newQuoteValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Quote validates input and prices it. Domain errors are returned unchanged;
// unexpected failures are logged and replaced by a generic internal error.
func (s *QuoteService) Quote(ctx context.Context, input domain.QuoteInput) (*domain.QuoteResult, error) {
	result, err := s.quote(ctx, input)
	if err != nil {
		s.metrics.ObserveQuote(string(apperrors.KindOf(err)))
		return nil, err
	}
	s.metrics.ObserveQuote("ok")
	return result, nil
}

// QuoteBatch prices every input with at most the configured number in flight.
// Items are admitted in input order. The returned slice has one entry per input,
// in input order, holding either the result or the item's error. An empty batch
// yields an empty result; only a batch above the item limit fails as a whole.
func (s *QuoteService) QuoteBatch(ctx context.Context, inputs []domain.QuoteInput) ([]domain.BatchItem, error) {
	if len(inputs) == 0 {
		return []domain.BatchItem{}, nil
	}
	if len(inputs) > s.maxItems {
		return nil, apperrors.NewValidationError(fmt.Sprintf("batch must contain at most %d items", s.maxItems))
	}
	s.metrics.ObserveBatch(len(inputs))

	items := make([]domain.BatchItem, len(inputs))
	sem := semaphore.NewWeighted(int64(s.concurrency))
	// admitted items run to completion even if the caller goes away
	workCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for i, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			s.LogError(ctx, err, "Batch cancelled before all items were admitted", slog.Int("admitted", i), slog.Int("total", len(inputs)))
			for j := i; j < len(inputs); j++ {
				items[j] = domain.BatchItem{Index: j, Error: &domain.ErrorDescriptor{
					Kind:    string(apperrors.KindInternal),
					Message: "Batch cancelled before item was priced",
				}}
			}
			break
		}
		wg.Add(1)
		go func(i int, input domain.QuoteInput) {
			defer wg.Done()
			defer sem.Release(1)
			items[i] = s.batchItem(workCtx, i, input)
		}(i, input)
	}
	wg.Wait()

	return items, nil
}

func (s *QuoteService) batchItem(ctx context.Context, index int, input domain.QuoteInput) domain.BatchItem {
	result, err := s.Quote(ctx, input)
	if err != nil {
		return domain.BatchItem{Index: index, Error: &domain.ErrorDescriptor{
			Kind:    string(apperrors.KindOf(err)),
			Message: apperrors.PublicMessage(err),
		}}
	}
	return domain.BatchItem{Index: index, Result: result}
}

func (s *QuoteService) quote(ctx context.Context, input domain.QuoteInput) (result *domain.QuoteResult, err error) {
	input.SKU = strings.TrimSpace(input.SKU)
	if verr := s.validate.Struct(input); verr != nil {
		return nil, apperrors.NewValidationError(validationMessage(verr))
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = s.internal(ctx, fmt.Errorf("panic while pricing: %v", r), input)
		}
	}()

	result, err = s.pricing.Price(ctx, input)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Kind != apperrors.KindInternal && appErr.Kind != apperrors.KindNotFound {
			return nil, appErr
		}
		return nil, s.internal(ctx, err, input)
	}
	return result, nil
}

// internal logs the full failure and returns the caller-safe replacement.
func (s *QuoteService) internal(ctx context.Context, err error, input domain.QuoteInput) error {
	s.LogError(ctx, err, "Failed to price quote",
		slog.String("sku", input.SKU),
		slog.Int("quantity", input.Quantity),
	)
	return apperrors.NewInternalError(err)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return "invalid quote request: " + strings.Join(msgs, "; ")
}

var _ portssvc.QuoteSvcFacade = (*QuoteService)(nil)
