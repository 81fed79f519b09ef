package readstore

import (
	"context"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/pkg/pgconv"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	GetProduct(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Product, error)
	GetProductForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Product, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      db.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db db.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return toProductView(row), nil
}

// FindForUpdate must run inside a transaction; the row stays locked until it ends.
func (r *ProductReadStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProductForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	return toProductView(row), nil
}

func toProductView(row query.Product) *queries.ProductView {
	return &queries.ProductView{
		ID:           row.ID,
		SKU:          row.Sku,
		Name:         row.Name,
		BasePrice:    row.BasePrice,
		CurrentPrice: row.CurrentPrice,
		StockLevel:   row.StockLevel,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
