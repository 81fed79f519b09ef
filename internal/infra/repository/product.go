package repository

import (
	"context"
	"time"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	UpdateProductPrices(ctx context.Context, db query.DBTX, arg query.UpdateProductPricesParams) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      db.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db db.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) UpdatePrices(ctx context.Context, tx db.DBTX, productID uuid.UUID, basePrice, currentPrice int64, at time.Time) error {
	affected, err := r.queries.UpdateProductPrices(ctx, tx, query.UpdateProductPricesParams{
		ID:           productID,
		BasePrice:    basePrice,
		CurrentPrice: currentPrice,
		UpdatedAt:    pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update product prices", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
