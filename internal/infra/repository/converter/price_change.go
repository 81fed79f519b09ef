package converter

import (
	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/pkg/pgconv"
)

func PriceChangeToCreateParams(c *pricing.PriceChange) query.CreatePriceChangeParams {
	return query.CreatePriceChangeParams{
		ID:            c.ID(),
		ProductID:     c.ProductID(),
		RuleID:        pgconv.UUIDPtrToPgtype(c.RuleID()),
		OldPrice:      c.OldPrice(),
		NewPrice:      c.NewPrice(),
		PercentChange: pgconv.DecimalToNumeric(c.Percent()),
		Source:        string(c.Source()),
		Reason:        c.Reason(),
		ActorID:       pgconv.UUIDPtrToPgtype(c.ActorID()),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
	}
}
