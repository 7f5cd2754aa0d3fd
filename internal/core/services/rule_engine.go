package services

import (
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RuleContext is the request context a pricing rule may read.
type RuleContext struct {
	Quantity int
	Region   *string
}

// Adjustment is a rule's effect on the running subtotal, at full precision.
type Adjustment struct {
	Name   string
	Type   domain.AdjustmentType
	Amount decimal.Decimal
}

// Rule is one independent pricing check. It sees the running subtotal after
// every earlier rule and reports whether it fires.
type Rule interface {
	Evaluate(rc RuleContext, subtotal decimal.Decimal) (Adjustment, bool)
}

// QuantityTier is a discount rate for orders of at least MinQty units.
type QuantityTier struct {
	Name    string
	MinQty  int
	Percent decimal.Decimal
}

// QuantityTierRule applies the single highest tier the quantity reaches.
type QuantityTierRule struct {
	Tiers []QuantityTier // highest MinQty first
}

func (r QuantityTierRule) Evaluate(rc RuleContext, subtotal decimal.Decimal) (Adjustment, bool) {
	for _, tier := range r.Tiers {
		if rc.Quantity >= tier.MinQty {
			return Adjustment{Name: tier.Name, Type: domain.Discount, Amount: subtotal.Mul(tier.Percent)}, true
		}
	}
	return Adjustment{}, false
}

// RegionSurchargeRule adds a percentage for requests from one region.
type RegionSurchargeRule struct {
	Name    string
	Region  string
	Percent decimal.Decimal
}

func (r RegionSurchargeRule) Evaluate(rc RuleContext, subtotal decimal.Decimal) (Adjustment, bool) {
	if rc.Region == nil || *rc.Region != r.Region {
		return Adjustment{}, false
	}
	return Adjustment{Name: r.Name, Type: domain.Surcharge, Amount: subtotal.Mul(r.Percent)}, true
}

// DefaultRules returns the standard rule chain: quantity tiers, then the EU surcharge.
func DefaultRules() []Rule {
	return []Rule{
		QuantityTierRule{Tiers: []QuantityTier{
			{Name: "qty>=100_discount", MinQty: 100, Percent: decimal.New(5, -2)},
			{Name: "qty>=50_discount", MinQty: 50, Percent: decimal.New(2, -2)},
		}},
		RegionSurchargeRule{Name: "eu_region_surcharge", Region: "EU", Percent: decimal.New(1, -2)},
	}
}

// RuleOutcome is the adjusted subtotal and the adjustments that produced it, in order.
type RuleOutcome struct {
	Subtotal    decimal.Decimal
	Adjustments []domain.RuleAdjustment
}

// RuleEngine applies an ordered list of rules. It holds no state between calls.
type RuleEngine struct {
	rules []Rule
}

// NewRuleEngine creates a RuleEngine. With no rules given it uses DefaultRules.
func NewRuleEngine(rules ...Rule) *RuleEngine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &RuleEngine{rules: rules}
}

// Apply runs every rule in order against the running subtotal. Evaluation order
// determines compounding: each rule sees the subtotal left by the rules before it.
func (e *RuleEngine) Apply(rc RuleContext, subtotal decimal.Decimal) RuleOutcome {
	adjustments := []domain.RuleAdjustment{}
	for _, rule := range e.rules {
		adj, fired := rule.Evaluate(rc, subtotal)
		if !fired {
			continue
		}
		switch adj.Type {
		case domain.Discount:
			subtotal = subtotal.Sub(adj.Amount)
		case domain.Surcharge:
			subtotal = subtotal.Add(adj.Amount)
		}
		adjustments = append(adjustments, domain.RuleAdjustment{
			Name:   adj.Name,
			Type:   adj.Type,
			Amount: adj.Amount.StringFixed(2),
		})
	}
	return RuleOutcome{Subtotal: subtotal, Adjustments: adjustments}
}
