package repository

import (
	"context"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/infra/repository/converter"
)

type PriceChangeWriteQueries interface {
	CreatePriceChange(ctx context.Context, db query.DBTX, arg query.CreatePriceChangeParams) error
}

// PriceChangeRepository only appends; recorded changes are never updated.
type PriceChangeRepository struct {
	queries PriceChangeWriteQueries
	db      db.DBTX
}

func NewPriceChangeRepository(queries PriceChangeWriteQueries, db db.DBTX) *PriceChangeRepository {
	return &PriceChangeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PriceChangeRepository) Create(ctx context.Context, tx db.DBTX, change *pricing.PriceChange) error {
	if err := r.queries.CreatePriceChange(ctx, tx, converter.PriceChangeToCreateParams(change)); err != nil {
		return infra.WrapRepoErr("failed to record price change", err)
	}
	return nil
}
