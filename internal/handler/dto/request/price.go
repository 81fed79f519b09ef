package request

import (
	"time"

	"dynamic-pricing/internal/pkg/ptr"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

// QuoteRequest previews a price. Without rule_id the winning active rule is
// used; at defaults to now.
type QuoteRequest struct {
	RuleID   *uuid.UUID `json:"rule_id"`
	Quantity *int       `json:"quantity" binding:"omitempty,min=1"`
	At       *time.Time `json:"at"`
}

func (r *QuoteRequest) ToQuery(productID uuid.UUID) queries.QuoteInput {
	return queries.QuoteInput{
		ProductID: productID,
		RuleID:    r.RuleID,
		Quantity:  ptr.Or(r.Quantity, 1),
		At:        r.At,
	}
}

type ApplyPriceRequest struct {
	RuleID   *uuid.UUID `json:"rule_id"`
	Quantity *int       `json:"quantity" binding:"omitempty,min=1"`
}

func (r *ApplyPriceRequest) ToCommand(productID uuid.UUID) commands.ApplyPriceRequest {
	return commands.ApplyPriceRequest{
		ProductID: productID,
		RuleID:    r.RuleID,
		Quantity:  ptr.Or(r.Quantity, 1),
	}
}

type SetManualPriceRequest struct {
	Price  *int64 `json:"price" binding:"required,min=0"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r *SetManualPriceRequest) ToCommand(productID uuid.UUID) commands.SetManualPriceRequest {
	return commands.SetManualPriceRequest{
		ProductID: productID,
		Price:     ptr.Or(r.Price, 0),
		Reason:    r.Reason,
	}
}
