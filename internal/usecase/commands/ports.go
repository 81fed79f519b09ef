package commands

import (
	"time"

	"dynamic-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

// EventTopic is the Kafka topic price changes are relayed to.
type EventTopic string

// PriceChangedEvent is the outbox payload; consumers key on ProductID.
type PriceChangedEvent struct {
	EventID       uuid.UUID  `json:"event_id"`
	ChangeID      uuid.UUID  `json:"change_id"`
	ProductID     uuid.UUID  `json:"product_id"`
	RuleID        *uuid.UUID `json:"rule_id,omitempty"`
	RuleType      string     `json:"rule_type,omitempty"`
	Source        string     `json:"source"`
	OldPrice      int64      `json:"old_price"`
	NewPrice      int64      `json:"new_price"`
	PercentChange string     `json:"percent_change"`
	Reason        string     `json:"reason,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func newPriceChangedEvent(c *pricing.PriceChange, ruleType pricing.RuleType) PriceChangedEvent {
	return PriceChangedEvent{
		EventID:       uuid.New(),
		ChangeID:      c.ID(),
		ProductID:     c.ProductID(),
		RuleID:        c.RuleID(),
		RuleType:      ruleType.String(),
		Source:        string(c.Source()),
		OldPrice:      c.OldPrice(),
		NewPrice:      c.NewPrice(),
		PercentChange: c.Percent().StringFixed(2),
		Reason:        c.Reason(),
		OccurredAt:    c.CreatedAt(),
	}
}
