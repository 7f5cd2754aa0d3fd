package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/quote_pricing_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCurrency is the target currency when neither the request nor configuration names one.
const DefaultCurrency = "USD"

// PricingEngine turns one QuoteInput into a QuoteResult: cost resolution, currency
// conversion and rule adjustments, strictly in that order.
type PricingEngine struct {
	BaseService
	products        portsrepo.ProductReader
	quotes          portsrepo.SupplierQuoteReader
	overrides       portsrepo.CostOverrideReader
	rates           portsrepo.ExchangeRateReader
	rules           *RuleEngine
	defaultCurrency string
	now             func() time.Time
	tracer          trace.Tracer
}

// PricingOption configures a PricingEngine.
type PricingOption func(*PricingEngine)

// WithDefaultCurrency sets the target currency used when a request omits one.
func WithDefaultCurrency(code string) PricingOption {
	return func(e *PricingEngine) {
		if code != "" {
			e.defaultCurrency = strings.ToUpper(code)
		}
	}
}

// WithRuleEngine replaces the default rule chain.
func WithRuleEngine(rules *RuleEngine) PricingOption {
	return func(e *PricingEngine) { e.rules = rules }
}

// WithClock sets the source of the current time used when a request has no `at`.
func WithClock(now func() time.Time) PricingOption {
	return func(e *PricingEngine) { e.now = now }
}

// NewPricingEngine creates a PricingEngine over the given repositories.
func NewPricingEngine(repos portsrepo.RepositoryProvider, opts ...PricingOption) *PricingEngine {
	e := &PricingEngine{
		products:        repos.ProductRepo,
		quotes:          repos.SupplierQuoteRepo,
		overrides:       repos.CostOverrideRepo,
		rates:           repos.ExchangeRateRepo,
		rules:           NewRuleEngine(),
		defaultCurrency: DefaultCurrency,
		now:             time.Now,
		tracer:          otel.Tracer("quote_pricing_app/pricing"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// resolvedCost is the unit cost chosen for a quote and where it came from.
type resolvedCost struct {
	source   domain.CostSource
	currency string
	unitCost decimal.Decimal
}

// Price computes the quote for input. Domain failures are returned as *apperrors.AppError
// with kinds SKU_NOT_FOUND, NO_COST or NO_RATE; anything else is a wrapped store error.
func (e *PricingEngine) Price(ctx context.Context, input domain.QuoteInput) (*domain.QuoteResult, error) {
	ctx, span := e.tracer.Start(ctx, "PricingEngine.Price", trace.WithAttributes(
		attribute.String("quote.sku", input.SKU),
		attribute.Int("quote.quantity", input.Quantity),
	))
	defer span.End()

	result, err := e.price(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.KindOf(err)))
		return nil, err
	}
	span.SetAttributes(attribute.String("quote.cost_source", string(result.Breakdown.Cost.Source)))
	return result, nil
}

func (e *PricingEngine) price(ctx context.Context, input domain.QuoteInput) (*domain.QuoteResult, error) {
	at := e.now()
	if input.At != nil {
		at = *input.At
	}
	target := e.defaultCurrency
	if input.TargetCurrency != nil && *input.TargetCurrency != "" {
		target = strings.ToUpper(*input.TargetCurrency)
	}

	product, err := e.products.FindBySku(ctx, input.SKU)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewSkuNotFoundError(input.SKU)
		}
		return nil, fmt.Errorf("failed to look up product %q: %w", input.SKU, err)
	}

	cost, err := e.resolveCost(ctx, product, input, at)
	if err != nil {
		return nil, err
	}

	quantity := decimal.NewFromInt(int64(input.Quantity))
	subtotal := cost.unitCost.Mul(quantity).Round(4)
	breakdown := domain.CostBreakdown{
		Source:   cost.source,
		Currency: cost.currency,
		UnitCost: cost.unitCost.StringFixed(4),
		Quantity: input.Quantity,
		Subtotal: subtotal.StringFixed(4),
	}

	currency := cost.currency
	if currency != target {
		rate, err := e.rates.FindRate(ctx, currency, target, at)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNoRateError(currency, target)
			}
			return nil, fmt.Errorf("failed to look up exchange rate %s->%s: %w", currency, target, err)
		}
		subtotal = subtotal.Mul(rate.Rate)
		breakdown.Exchange = &domain.ExchangeConversion{
			Base:  currency,
			Quote: target,
			Rate:  rate.Rate.StringFixed(4),
		}
		currency = target
	}

	outcome := e.rules.Apply(RuleContext{Quantity: input.Quantity, Region: input.Region}, subtotal)

	e.LogDebug(ctx, "Quote priced",
		slog.String("sku", input.SKU),
		slog.String("cost_source", string(cost.source)),
		slog.Int("adjustments", len(outcome.Adjustments)),
	)

	return &domain.QuoteResult{
		SKU:        input.SKU,
		Quantity:   input.Quantity,
		Currency:   currency,
		UnitPrice:  outcome.Subtotal.Div(quantity).StringFixed(2),
		TotalPrice: outcome.Subtotal.StringFixed(2),
		Breakdown: domain.QuoteBreakdown{
			Cost:            breakdown,
			RuleAdjustments: outcome.Adjustments,
		},
	}, nil
}

// resolveCost picks exactly one cost source: an applicable override, otherwise the
// cheapest applicable supplier quote.
func (e *PricingEngine) resolveCost(ctx context.Context, product *domain.Product, input domain.QuoteInput, at time.Time) (*resolvedCost, error) {
	override, err := e.overrides.FindApplicable(ctx, product.ProductID, input.Customer, input.Region, at)
	switch {
	case err == nil:
		return &resolvedCost{
			source:   domain.CostSourceOverride,
			currency: strings.ToUpper(override.CurrencyCode),
			unitCost: override.UnitPrice,
		}, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up cost override for product %s: %w", product.ProductID, err)
	}

	quote, err := e.quotes.FindBestQuote(ctx, product.ProductID, input.Region, input.Quantity, at)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNoCostError()
		}
		return nil, fmt.Errorf("failed to look up supplier quote for product %s: %w", product.ProductID, err)
	}
	return &resolvedCost{
		source:   domain.CostSourceSupplierQuote,
		currency: strings.ToUpper(quote.CurrencyCode),
		unitCost: quote.UnitPrice,
	}, nil
}

var _ portssvc.PricingSvc = (*PricingEngine)(nil)
