package queries

import (
	"time"

	"github.com/google/uuid"
)

type PricingRuleView struct {
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

type PriceChangeView struct {
	ID            uuid.UUID  `json:"id"`
	ProductID     uuid.UUID  `json:"product_id"`
	RuleID        *uuid.UUID `json:"rule_id,omitempty"`
	OldPrice      int64      `json:"old_price"`
	NewPrice      int64      `json:"new_price"`
	PercentChange string     `json:"percent_change"`
	Source        string     `json:"source"`
	Reason        string     `json:"reason,omitempty"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ProductView struct {
	ID           uuid.UUID `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	BasePrice    int64     `json:"base_price"`
	CurrentPrice int64     `json:"current_price"`
	StockLevel   int32     `json:"stock_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// QuoteView is a dry-run evaluation; nothing is persisted for it.
type QuoteView struct {
	ProductID    uuid.UUID  `json:"product_id"`
	RuleID       *uuid.UUID `json:"rule_id,omitempty"`
	RuleType     string     `json:"rule_type,omitempty"`
	BasePrice    int64      `json:"base_price"`
	CurrentPrice int64      `json:"current_price"`
	Price        int64      `json:"price"`
	Outcome      string     `json:"outcome"`
	Issue        string     `json:"issue,omitempty"`
	EvaluatedAt  time.Time  `json:"evaluated_at"`
}
