package services_test

import (
	"testing"

	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	"github.com/SscSPs/quote_pricing_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleEngine_Apply(t *testing.T) {
	eu := "EU"
	us := "US"
	tests := []struct {
		name      string
		quantity  int
		region    *string
		subtotal  string
		wantTotal string
		wantAdjs  []domain.RuleAdjustment
	}{
		{
			name:      "below every tier",
			quantity:  10,
			subtotal:  "100.00",
			wantTotal: "100.00",
			wantAdjs:  []domain.RuleAdjustment{},
		},
		{
			name:      "quantity 49 gets nothing",
			quantity:  49,
			subtotal:  "490.00",
			wantTotal: "490.00",
			wantAdjs:  []domain.RuleAdjustment{},
		},
		{
			name:      "quantity 50 gets 2%",
			quantity:  50,
			subtotal:  "500.00",
			wantTotal: "490.00",
			wantAdjs:  []domain.RuleAdjustment{{Name: "qty>=50_discount", Type: domain.Discount, Amount: "10.00"}},
		},
		{
			name:      "quantity 100 gets only 5%",
			quantity:  100,
			subtotal:  "1000.00",
			wantTotal: "950.00",
			wantAdjs:  []domain.RuleAdjustment{{Name: "qty>=100_discount", Type: domain.Discount, Amount: "50.00"}},
		},
		{
			name:      "EU surcharge compounds on discounted subtotal",
			quantity:  100,
			region:    &eu,
			subtotal:  "1000.00",
			wantTotal: "959.50",
			wantAdjs: []domain.RuleAdjustment{
				{Name: "qty>=100_discount", Type: domain.Discount, Amount: "50.00"},
				{Name: "eu_region_surcharge", Type: domain.Surcharge, Amount: "9.50"},
			},
		},
		{
			name:      "EU surcharge alone",
			quantity:  1,
			region:    &eu,
			subtotal:  "10.00",
			wantTotal: "10.10",
			wantAdjs:  []domain.RuleAdjustment{{Name: "eu_region_surcharge", Type: domain.Surcharge, Amount: "0.10"}},
		},
		{
			name:      "other region has no surcharge",
			quantity:  1,
			region:    &us,
			subtotal:  "10.00",
			wantTotal: "10.00",
			wantAdjs:  []domain.RuleAdjustment{},
		},
	}

	engine := services.NewRuleEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := engine.Apply(services.RuleContext{Quantity: tt.quantity, Region: tt.region}, decimal.RequireFromString(tt.subtotal))

			assert.Equal(t, tt.wantTotal, out.Subtotal.StringFixed(2))
			assert.Equal(t, tt.wantAdjs, out.Adjustments)
		})
	}
}

func TestRuleEngine_IsPure(t *testing.T) {
	engine := services.NewRuleEngine()
	eu := "EU"
	rc := services.RuleContext{Quantity: 75, Region: &eu}
	subtotal := decimal.RequireFromString("1234.5678")

	first := engine.Apply(rc, subtotal)
	second := engine.Apply(rc, subtotal)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.Equal(t, first.Adjustments, second.Adjustments)
}

func TestRuleEngine_TierDiscountIsOneOfAllowedRates(t *testing.T) {
	engine := services.NewRuleEngine()
	subtotal := decimal.NewFromInt(1000)
	allowed := map[string]bool{"0": true, "20": true, "50": true}

	for q := 1; q <= 250; q++ {
		out := engine.Apply(services.RuleContext{Quantity: q}, subtotal)
		require.LessOrEqual(t, len(out.Adjustments), 1, "quantity %d", q)
		discount := subtotal.Sub(out.Subtotal)
		assert.True(t, allowed[discount.String()], "quantity %d got discount %s", q, discount)
	}
}

type flatFeeRule struct{}

func (flatFeeRule) Evaluate(_ services.RuleContext, _ decimal.Decimal) (services.Adjustment, bool) {
	return services.Adjustment{Name: "handling_fee", Type: domain.Surcharge, Amount: decimal.NewFromInt(5)}, true
}

func TestRuleEngine_CustomRulesRunInOrder(t *testing.T) {
	rules := append([]services.Rule{flatFeeRule{}}, services.DefaultRules()...)
	engine := services.NewRuleEngine(rules...)

	out := engine.Apply(services.RuleContext{Quantity: 100}, decimal.NewFromInt(995))

	require.Len(t, out.Adjustments, 2)
	assert.Equal(t, "handling_fee", out.Adjustments[0].Name)
	assert.Equal(t, "50.00", out.Adjustments[1].Amount)
	assert.Equal(t, "950.00", out.Subtotal.StringFixed(2))
}
