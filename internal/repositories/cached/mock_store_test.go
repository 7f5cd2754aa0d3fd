package cached_test

import (
	"context"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock PricingStore ---
type MockPricingStore struct {
	mock.Mock
}

func (m *MockPricingStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPricingStore) GetProductBySku(ctx context.Context, sku string) (*domain.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockPricingStore) ListSupplierQuotes(ctx context.Context, filter portsrepo.SupplierQuoteFilter) ([]domain.SupplierQuote, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplierQuote), args.Error(1)
}

func (m *MockPricingStore) ListCostOverrides(ctx context.Context, filter portsrepo.CostOverrideFilter) ([]domain.CostOverride, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostOverride), args.Error(1)
}

func (m *MockPricingStore) FindExchangeRate(ctx context.Context, base, quote string, at time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, base, quote, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portsrepo.PricingStore = (*MockPricingStore)(nil)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }
