package shared

import (
	"time"

	"dynamic-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

const (
	// CompetitorLookback bounds how old a competitor observation may be.
	CompetitorLookback = 7 * 24 * time.Hour
)

type ProductSnapshot struct {
	ID           uuid.UUID
	SKU          string
	Name         string
	BasePrice    int64
	CurrentPrice int64
	StockLevel   int
}

// SignalSnapshot is the stored market state of a product at one instant.
type SignalSnapshot struct {
	RecentViews      int
	RecentPurchases  int
	CompetitorPrices []int64
}

// EvaluationContext combines product state, signals and request inputs.
func EvaluationContext(p *ProductSnapshot, s *SignalSnapshot, at time.Time, quantity int) pricing.EvaluationContext {
	ec := pricing.EvaluationContext{
		At:         at,
		StockLevel: p.StockLevel,
		Quantity:   quantity,
	}
	if s != nil {
		ec.RecentViews = s.RecentViews
		ec.RecentPurchases = s.RecentPurchases
		ec.CompetitorPrices = s.CompetitorPrices
	}
	return ec
}

type EventKind string

const (
	EventView     EventKind = "view"
	EventPurchase EventKind = "purchase"
)

func (k EventKind) IsValid() bool {
	return k == EventView || k == EventPurchase
}

type OutboxMessage struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}
