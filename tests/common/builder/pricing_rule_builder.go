//go:build unit || e2e

package builder

import (
	"time"

	"dynamic-pricing/internal/domain/pricing"
	reqdto "dynamic-pricing/internal/handler/dto/request"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingRuleBuilder struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Type      string
	Status    string
	Priority  string
	MinPrice  *int64
	MaxPrice  *int64
	StartsAt  *time.Time
	EndsAt    *time.Time
	Settings  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPricingRuleBuilder() *PricingRuleBuilder {
	now := time.Now()
	return &PricingRuleBuilder{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Name:      "Lunch happy hour",
		Type:      string(pricing.RuleTypeTimeBased),
		Status:    string(pricing.StatusActive),
		Priority:  string(pricing.PriorityMedium),
		Settings: map[string]any{
			"happy_hours":         []any{12, 13},
			"happy_hour_discount": 20,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *PricingRuleBuilder) With(mutate func(*PricingRuleBuilder)) *PricingRuleBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PricingRuleBuilder) Params() pricing.RuleParams {
	return pricing.RuleParams{
		ID:        b.ID,
		ProductID: b.ProductID,
		Name:      b.Name,
		Type:      b.Type,
		Status:    b.Status,
		Priority:  b.Priority,
		MinPrice:  b.MinPrice,
		MaxPrice:  b.MaxPrice,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		Settings:  pricing.Settings(b.Settings),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *PricingRuleBuilder) BuildDomain() (*pricing.Rule, error) {
	return pricing.NewRule(b.Params(), b.CreatedAt)
}

// BuildStored skips validation, as rules loaded from the database do.
func (b *PricingRuleBuilder) BuildStored() *pricing.Rule {
	return pricing.ReconstructRule(b.Params())
}

func (b *PricingRuleBuilder) BuildCreateRequestDTO() reqdto.CreatePricingRuleRequest {
	return reqdto.CreatePricingRuleRequest{
		ProductID:     b.ProductID,
		Name:          b.Name,
		RuleType:      b.Type,
		Priority:      b.Priority,
		MinPrice:      b.MinPrice,
		MaxPrice:      b.MaxPrice,
		StartsAt:      b.StartsAt,
		EndsAt:        b.EndsAt,
		Configuration: b.Settings,
		Activate:      b.Status == string(pricing.StatusActive),
	}
}

func (b *PricingRuleBuilder) BuildView() *queries.PricingRuleView {
	return &queries.PricingRuleView{
		ID:            b.ID,
		ProductID:     b.ProductID,
		Name:          b.Name,
		RuleType:      b.Type,
		Status:        b.Status,
		Priority:      b.Priority,
		MinPrice:      b.MinPrice,
		MaxPrice:      b.MaxPrice,
		StartsAt:      b.StartsAt,
		EndsAt:        b.EndsAt,
		Configuration: b.Settings,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *PricingRuleBuilder) WithID(id uuid.UUID) *PricingRuleBuilder {
	b.ID = id
	return b
}

func (b *PricingRuleBuilder) WithProductID(productID uuid.UUID) *PricingRuleBuilder {
	b.ProductID = productID
	return b
}

func (b *PricingRuleBuilder) WithName(name string) *PricingRuleBuilder {
	b.Name = name
	return b
}

func (b *PricingRuleBuilder) WithStatus(status pricing.Status) *PricingRuleBuilder {
	b.Status = string(status)
	return b
}

func (b *PricingRuleBuilder) WithPriority(priority pricing.Priority) *PricingRuleBuilder {
	b.Priority = string(priority)
	return b
}

func (b *PricingRuleBuilder) WithBounds(minPrice, maxPrice *int64) *PricingRuleBuilder {
	b.MinPrice = minPrice
	b.MaxPrice = maxPrice
	return b
}

func (b *PricingRuleBuilder) WithWindow(start, end *time.Time) *PricingRuleBuilder {
	b.StartsAt = start
	b.EndsAt = end
	return b
}

func (b *PricingRuleBuilder) WithUpdatedAt(updatedAt time.Time) *PricingRuleBuilder {
	b.UpdatedAt = updatedAt
	return b
}

func (b *PricingRuleBuilder) WithSettings(ruleType pricing.RuleType, settings map[string]any) *PricingRuleBuilder {
	b.Type = string(ruleType)
	b.Settings = settings
	return b
}

func (b *PricingRuleBuilder) AsInventory(threshold, baseDiscount int) *PricingRuleBuilder {
	return b.WithSettings(pricing.RuleTypeInventoryBased, map[string]any{
		"low_stock_threshold": threshold,
		"base_discount":       baseDiscount,
	})
}

func (b *PricingRuleBuilder) AsDemand(high, low, surge, discount float64) *PricingRuleBuilder {
	return b.WithSettings(pricing.RuleTypeDemandBased, map[string]any{
		"high_demand_threshold": high,
		"low_demand_threshold":  low,
		"surge_percent":         surge,
		"discount_percent":      discount,
	})
}

func (b *PricingRuleBuilder) AsCompetitor(strategy pricing.CompetitorStrategy, pct float64) *PricingRuleBuilder {
	settings := map[string]any{"strategy": string(strategy)}
	switch strategy {
	case pricing.StrategyUndercut:
		settings["undercut_percent"] = pct
	case pricing.StrategyPremium:
		settings["premium_percent"] = pct
	}
	return b.WithSettings(pricing.RuleTypeCompetitorBased, settings)
}

func (b *PricingRuleBuilder) AsSeasonal(adjustments map[string]any) *PricingRuleBuilder {
	return b.WithSettings(pricing.RuleTypeSeasonal, map[string]any{
		"monthly_adjustments": adjustments,
	})
}

func (b *PricingRuleBuilder) AsBundle(small, medium, large float64) *PricingRuleBuilder {
	return b.WithSettings(pricing.RuleTypeBundle, map[string]any{
		"tier_2_4_discount":     small,
		"tier_5_9_discount":     medium,
		"tier_10_plus_discount": large,
	})
}

func (b *PricingRuleBuilder) AsVolume(tiers ...[2]float64) *PricingRuleBuilder {
	raw := make([]any, 0, len(tiers))
	for _, t := range tiers {
		raw = append(raw, map[string]any{"min_quantity": t[0], "discount_percent": t[1]})
	}
	return b.WithSettings(pricing.RuleTypeVolume, map[string]any{"tiers": raw})
}

func (b *PricingRuleBuilder) AsAIOptimized(model string) *PricingRuleBuilder {
	return b.WithSettings(pricing.RuleTypeAIOptimized, map[string]any{"model": model})
}
