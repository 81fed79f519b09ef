package request

import (
	"time"

	"dynamic-pricing/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePricingRuleRequest struct {
	ProductID     uuid.UUID      `json:"product_id" binding:"required"`
	Name          string         `json:"name" binding:"required,max=120"`
	RuleType      string         `json:"rule_type" binding:"required"`
	Priority      string         `json:"priority"`
	MinPrice      *int64         `json:"min_price" binding:"omitempty,min=0"`
	MaxPrice      *int64         `json:"max_price" binding:"omitempty,min=0"`
	StartsAt      *time.Time     `json:"starts_at"`
	EndsAt        *time.Time     `json:"ends_at"`
	Configuration map[string]any `json:"configuration" binding:"required"`
	Activate      bool           `json:"activate"`
}

func (r *CreatePricingRuleRequest) ToCommand() commands.CreatePricingRuleRequest {
	return commands.CreatePricingRuleRequest{
		ProductID:     r.ProductID,
		Name:          r.Name,
		Type:          r.RuleType,
		Priority:      r.Priority,
		MinPrice:      r.MinPrice,
		MaxPrice:      r.MaxPrice,
		StartsAt:      r.StartsAt,
		EndsAt:        r.EndsAt,
		Configuration: r.Configuration,
		Activate:      r.Activate,
	}
}

// UpdatePricingRuleRequest is a full replacement of bounds and window: an
// omitted bound is cleared. Name, priority and configuration are optional.
type UpdatePricingRuleRequest struct {
	Name          *string        `json:"name" binding:"omitempty,min=1,max=120"`
	Priority      *string        `json:"priority"`
	MinPrice      *int64         `json:"min_price" binding:"omitempty,min=0"`
	MaxPrice      *int64         `json:"max_price" binding:"omitempty,min=0"`
	StartsAt      *time.Time     `json:"starts_at"`
	EndsAt        *time.Time     `json:"ends_at"`
	Configuration map[string]any `json:"configuration"`
}

func (r *UpdatePricingRuleRequest) ToCommand() commands.UpdatePricingRuleRequest {
	return commands.UpdatePricingRuleRequest{
		Name:          r.Name,
		Priority:      r.Priority,
		MinPrice:      r.MinPrice,
		MaxPrice:      r.MaxPrice,
		StartsAt:      r.StartsAt,
		EndsAt:        r.EndsAt,
		Configuration: r.Configuration,
	}
}

type ChangeRuleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
