package request

import (
	"dynamic-pricing/internal/pkg/ptr"
	"dynamic-pricing/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordEventRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Quantity *int   `json:"quantity" binding:"omitempty,min=1,max=2147483647"`
}

func (r *RecordEventRequest) ToCommand(productID uuid.UUID) commands.RecordEventRequest {
	return commands.RecordEventRequest{
		ProductID: productID,
		Kind:      r.Kind,
		Quantity:  ptr.Or(r.Quantity, 1),
	}
}

type RecordCompetitorPriceRequest struct {
	Competitor string `json:"competitor" binding:"required,max=100"`
	Price      int64  `json:"price" binding:"required,min=1"`
}

func (r *RecordCompetitorPriceRequest) ToCommand(productID uuid.UUID) commands.RecordCompetitorPriceRequest {
	return commands.RecordCompetitorPriceRequest{
		ProductID:  productID,
		Competitor: r.Competitor,
		Price:      r.Price,
	}
}
