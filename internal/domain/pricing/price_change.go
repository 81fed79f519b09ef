package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Source string

const (
	SourceRule   Source = "rule"
	SourceManual Source = "manual"
)

func (s Source) IsValid() bool {
	return s == SourceRule || s == SourceManual
}

// PriceChange is an append-only audit record; it has no mutators.
type PriceChange struct {
	id        uuid.UUID
	productID uuid.UUID
	ruleID    *uuid.UUID
	oldPrice  int64
	newPrice  int64
	percent   decimal.Decimal
	source    Source
	reason    string
	actorID   *uuid.UUID
	createdAt time.Time
}

type PriceChangeParams struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	RuleID    *uuid.UUID
	OldPrice  int64
	NewPrice  int64
	Percent   decimal.Decimal
	Source    string
	Reason    string
	ActorID   *uuid.UUID
	CreatedAt time.Time
}

func NewRuleDrivenChange(productID uuid.UUID, q Quote, oldPrice int64, now time.Time) (*PriceChange, error) {
	ruleID := q.RuleID
	return newPriceChange(productID, &ruleID, oldPrice, q.Price, SourceRule, "", nil, now)
}

func NewManualChange(productID uuid.UUID, oldPrice, newPrice int64, reason string, actorID uuid.UUID, now time.Time) (*PriceChange, error) {
	actor := actorID
	return newPriceChange(productID, nil, oldPrice, newPrice, SourceManual, reason, &actor, now)
}

func newPriceChange(productID uuid.UUID, ruleID *uuid.UUID, oldPrice, newPrice int64, source Source, reason string, actorID *uuid.UUID, now time.Time) (*PriceChange, error) {
	if oldPrice < 0 || newPrice < 0 {
		return nil, ErrNegativePrice
	}
	if oldPrice == newPrice {
		return nil, ErrNoPriceChange
	}
	return &PriceChange{
		id:        uuid.New(),
		productID: productID,
		ruleID:    ruleID,
		oldPrice:  oldPrice,
		newPrice:  newPrice,
		percent:   PercentChange(oldPrice, newPrice),
		source:    source,
		reason:    reason,
		actorID:   actorID,
		createdAt: now,
	}, nil
}

func ReconstructPriceChange(p PriceChangeParams) (*PriceChange, error) {
	source := Source(p.Source)
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}
	return &PriceChange{
		id:        p.ID,
		productID: p.ProductID,
		ruleID:    p.RuleID,
		oldPrice:  p.OldPrice,
		newPrice:  p.NewPrice,
		percent:   p.Percent,
		source:    source,
		reason:    p.Reason,
		actorID:   p.ActorID,
		createdAt: p.CreatedAt,
	}, nil
}

// PercentChange is the relative move from old to new, rounded to two
// places. A change from zero reports 0.
func PercentChange(oldPrice, newPrice int64) decimal.Decimal {
	if oldPrice == 0 {
		return decimal.Zero
	}
	delta := decimal.NewFromInt(newPrice - oldPrice)
	return delta.Mul(hundred).Div(decimal.NewFromInt(oldPrice)).Round(2)
}

func (c *PriceChange) ID() uuid.UUID            { return c.id }
func (c *PriceChange) ProductID() uuid.UUID     { return c.productID }
func (c *PriceChange) RuleID() *uuid.UUID       { return c.ruleID }
func (c *PriceChange) OldPrice() int64          { return c.oldPrice }
func (c *PriceChange) NewPrice() int64          { return c.newPrice }
func (c *PriceChange) Percent() decimal.Decimal { return c.percent }
func (c *PriceChange) Source() Source           { return c.source }
func (c *PriceChange) Reason() string           { return c.reason }
func (c *PriceChange) ActorID() *uuid.UUID      { return c.actorID }
func (c *PriceChange) CreatedAt() time.Time     { return c.createdAt }
