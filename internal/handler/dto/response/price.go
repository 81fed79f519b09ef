package response

import (
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	BasePrice    int64     `json:"base_price"`
	CurrentPrice int64     `json:"current_price"`
	StockLevel   int32     `json:"stock_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) (*ProductResponse, error) {
	var res ProductResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type QuoteResponse struct {
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

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	var res QuoteResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type PriceChangeResponse struct {
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

func FromPriceChangeList(items []*queries.PriceChangeView) ([]PriceChangeResponse, error) {
	res := make([]PriceChangeResponse, len(items))
	for i, it := range items {
		if err := copier.Copy(&res[i], it); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func FromPriceChange(c *pricing.PriceChange) *PriceChangeResponse {
	if c == nil {
		return nil
	}
	return &PriceChangeResponse{
		ID:            c.ID(),
		ProductID:     c.ProductID(),
		RuleID:        c.RuleID(),
		OldPrice:      c.OldPrice(),
		NewPrice:      c.NewPrice(),
		PercentChange: c.Percent().StringFixed(2),
		Source:        string(c.Source()),
		Reason:        c.Reason(),
		ActorID:       c.ActorID(),
		CreatedAt:     c.CreatedAt(),
	}
}

type PriceChangeListResponse struct {
	PriceChanges []PriceChangeResponse `json:"price_changes"`
	NextCursor   string                `json:"next_cursor,omitempty"`
}

// ApplyPriceResponse reports the evaluation. Change is absent when the
// current price was left as it was.
type ApplyPriceResponse struct {
	ProductID    uuid.UUID            `json:"product_id"`
	RuleID       *uuid.UUID           `json:"rule_id,omitempty"`
	RuleType     string               `json:"rule_type,omitempty"`
	Outcome      string               `json:"outcome"`
	Issue        string               `json:"issue,omitempty"`
	BasePrice    int64                `json:"base_price"`
	Price        int64                `json:"price"`
	CurrentPrice int64                `json:"current_price"`
	Change       *PriceChangeResponse `json:"change,omitempty"`
}

func FromApplyResult(productID uuid.UUID, r *commands.ApplyPriceResult) *ApplyPriceResponse {
	res := &ApplyPriceResponse{
		ProductID:    productID,
		RuleType:     r.Quote.RuleType.String(),
		Outcome:      string(r.Quote.Outcome),
		BasePrice:    r.Quote.BasePrice,
		Price:        r.Quote.Price,
		CurrentPrice: r.CurrentPrice,
		Change:       FromPriceChange(r.Change),
	}
	if r.Quote.RuleID != uuid.Nil {
		id := r.Quote.RuleID
		res.RuleID = &id
	}
	if r.Quote.Issue != nil {
		res.Issue = r.Quote.Issue.Error()
	}
	return res
}
