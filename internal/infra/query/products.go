package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `id, sku, name, base_price, current_price, stock_level, created_at, updated_at`

const getProduct = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) GetProduct(ctx context.Context, db DBTX, id uuid.UUID) (Product, error) {
	return scanProduct(db.QueryRow(ctx, getProduct, id))
}

const getProductForUpdate = getProduct + ` FOR UPDATE`

func (q *Queries) GetProductForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Product, error) {
	return scanProduct(db.QueryRow(ctx, getProductForUpdate, id))
}

const updateProductPrices = `
UPDATE products
SET base_price    = $2,
    current_price = $3,
    updated_at    = $4
WHERE id = $1`

type UpdateProductPricesParams struct {
	ID           uuid.UUID
	BasePrice    int64
	CurrentPrice int64
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) UpdateProductPrices(ctx context.Context, db DBTX, arg UpdateProductPricesParams) (int64, error) {
	tag, err := db.Exec(ctx, updateProductPrices, arg.ID, arg.BasePrice, arg.CurrentPrice, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Sku,
		&i.Name,
		&i.BasePrice,
		&i.CurrentPrice,
		&i.StockLevel,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
