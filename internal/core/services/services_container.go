package services

import (
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/quote_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/quote_pricing_app/internal/metrics"
	"github.com/SscSPs/quote_pricing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// m may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	pricing := NewPricingEngine(repos, WithDefaultCurrency(cfg.DefaultCurrency))
	container.Pricing = pricing

	container.Quote = NewQuoteService(
		pricing,
		WithBatchConcurrency(cfg.BatchConcurrency),
		WithMaxBatchItems(cfg.BatchMaxItems),
		WithMetrics(m),
	)

	container.Health = repos.Health

	return container
}
