package mapping

import (
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	"github.com/SscSPs/quote_pricing_app/internal/models"
)

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:    m.ProductID,
		SKU:          m.SKU,
		Name:         m.Name,
		BaseCurrency: m.BaseCurrency,
	}
}

// ToDomainSupplierQuote converts a model SupplierQuote to a domain SupplierQuote
func ToDomainSupplierQuote(m models.SupplierQuote) domain.SupplierQuote {
	return domain.SupplierQuote{
		SupplierQuoteID: m.SupplierQuoteID,
		ProductID:       m.ProductID,
		Supplier:        m.Supplier,
		Region:          m.Region,
		CurrencyCode:    m.CurrencyCode,
		MinQty:          m.MinQty,
		MaxQty:          m.MaxQty,
		UnitPrice:       m.UnitPrice,
		EffectiveFrom:   m.EffectiveFrom,
		EffectiveTo:     m.EffectiveTo,
	}
}

// ToDomainCostOverride converts a model CostOverride to a domain CostOverride
func ToDomainCostOverride(m models.CostOverride) domain.CostOverride {
	return domain.CostOverride{
		CostOverrideID: m.CostOverrideID,
		ProductID:      m.ProductID,
		Customer:       m.Customer,
		Region:         m.Region,
		UnitPrice:      m.UnitPrice,
		CurrencyCode:   m.CurrencyCode,
		EffectiveFrom:  m.EffectiveFrom,
		EffectiveTo:    m.EffectiveTo,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             m.Rate,
		DateEffective:    m.DateEffective,
	}
}
