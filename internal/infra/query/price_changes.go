package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const priceChangeColumns = `id, product_id, rule_id, old_price, new_price, percent_change, source, reason, actor_id, created_at`

const createPriceChange = `
INSERT INTO price_changes (id, product_id, rule_id, old_price, new_price, percent_change, source, reason, actor_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreatePriceChangeParams struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	RuleID        pgtype.UUID
	OldPrice      int64
	NewPrice      int64
	PercentChange pgtype.Numeric
	Source        string
	Reason        string
	ActorID       pgtype.UUID
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreatePriceChange(ctx context.Context, db DBTX, arg CreatePriceChangeParams) error {
	_, err := db.Exec(ctx, createPriceChange,
		arg.ID,
		arg.ProductID,
		arg.RuleID,
		arg.OldPrice,
		arg.NewPrice,
		arg.PercentChange,
		arg.Source,
		arg.Reason,
		arg.ActorID,
		arg.CreatedAt,
	)
	return err
}

const listPriceChangesFirstPage = `
SELECT ` + priceChangeColumns + `
FROM price_changes
WHERE product_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (q *Queries) ListPriceChangesFirstPage(ctx context.Context, db DBTX, productID uuid.UUID, limit int32) ([]PriceChange, error) {
	rows, err := db.Query(ctx, listPriceChangesFirstPage, productID, limit)
	if err != nil {
		return nil, err
	}
	return collectPriceChanges(rows)
}

const listPriceChangesKeyset = `
SELECT ` + priceChangeColumns + `
FROM price_changes
WHERE product_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type ListPriceChangesKeysetParams struct {
	ProductID uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListPriceChangesKeyset(ctx context.Context, db DBTX, arg ListPriceChangesKeysetParams) ([]PriceChange, error) {
	rows, err := db.Query(ctx, listPriceChangesKeyset, arg.ProductID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPriceChanges(rows)
}

func scanPriceChange(row pgx.Row) (PriceChange, error) {
	var i PriceChange
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.RuleID,
		&i.OldPrice,
		&i.NewPrice,
		&i.PercentChange,
		&i.Source,
		&i.Reason,
		&i.ActorID,
		&i.CreatedAt,
	)
	return i, err
}

func collectPriceChanges(rows pgx.Rows) ([]PriceChange, error) {
	defer rows.Close()
	var items []PriceChange
	for rows.Next() {
		i, err := scanPriceChange(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
