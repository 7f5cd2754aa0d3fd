package services

import "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Pricing PricingSvc
	Quote   QuoteSvcFacade
	Health  repositories.HealthChecker
}
