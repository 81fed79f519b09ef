package response

import (
	"time"

	"dynamic-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PricingRuleResponse struct {
	ID            uuid.UUID      `json:"id"`
	ProductID     uuid.UUID      `json:"product_id"`
	Name          string         `json:"name"`
	RuleType      string         `json:"rule_type"`
	Status        string         `json:"status"`
	Priority      string         `json:"priority"`
	MinPrice      *int64         `json:"min_price,omitempty"`
	MaxPrice      *int64         `json:"max_price,omitempty"`
	StartsAt      *time.Time     `json:"starts_at,omitempty"`
	EndsAt        *time.Time     `json:"ends_at,omitempty"`
	Configuration map[string]any `json:"configuration"`
	CreatedBy     *uuid.UUID     `json:"created_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func FromPricingRuleView(v *queries.PricingRuleView) (*PricingRuleResponse, error) {
	var res PricingRuleResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromPricingRuleList(items []*queries.PricingRuleView) ([]PricingRuleResponse, error) {
	res := make([]PricingRuleResponse, len(items))
	for i, it := range items {
		if err := copier.Copy(&res[i], it); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type CreatePricingRuleResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}
