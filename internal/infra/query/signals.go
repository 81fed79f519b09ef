package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getDemandCounts = `
SELECT COALESCE(SUM(quantity) FILTER (WHERE kind = 'view'), 0)::bigint     AS views,
       COALESCE(SUM(quantity) FILTER (WHERE kind = 'purchase'), 0)::bigint AS purchases
FROM product_events
WHERE product_id = $1 AND occurred_at >= $2 AND occurred_at <= $3`

type DemandCounts struct {
	Views     int64
	Purchases int64
}

func (q *Queries) GetDemandCounts(ctx context.Context, db DBTX, productID uuid.UUID, since, until pgtype.Timestamptz) (DemandCounts, error) {
	var i DemandCounts
	err := db.QueryRow(ctx, getDemandCounts, productID, since, until).Scan(&i.Views, &i.Purchases)
	return i, err
}

// Latest observation per competitor inside [since, until]. Rows stamped
// after until are future-dated and ignored.
const listLatestCompetitorPrices = `
SELECT DISTINCT ON (competitor) price
FROM competitor_prices
WHERE product_id = $1 AND observed_at >= $2 AND observed_at <= $3
ORDER BY competitor, observed_at DESC`

func (q *Queries) ListLatestCompetitorPrices(ctx context.Context, db DBTX, productID uuid.UUID, since, until pgtype.Timestamptz) ([]int64, error) {
	rows, err := db.Query(ctx, listLatestCompetitorPrices, productID, since, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var price int64
		if err := rows.Scan(&price); err != nil {
			return nil, err
		}
		items = append(items, price)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertProductEvent = `
INSERT INTO product_events (product_id, kind, quantity, occurred_at)
VALUES ($1, $2, $3, $4)`

type InsertProductEventParams struct {
	ProductID  uuid.UUID
	Kind       string
	Quantity   int32
	OccurredAt pgtype.Timestamptz
}

func (q *Queries) InsertProductEvent(ctx context.Context, db DBTX, arg InsertProductEventParams) error {
	_, err := db.Exec(ctx, insertProductEvent, arg.ProductID, arg.Kind, arg.Quantity, arg.OccurredAt)
	return err
}

const insertCompetitorPrice = `
INSERT INTO competitor_prices (product_id, competitor, price, observed_at)
VALUES ($1, $2, $3, $4)`

type InsertCompetitorPriceParams struct {
	ProductID  uuid.UUID
	Competitor string
	Price      int64
	ObservedAt pgtype.Timestamptz
}

func (q *Queries) InsertCompetitorPrice(ctx context.Context, db DBTX, arg InsertCompetitorPriceParams) error {
	_, err := db.Exec(ctx, insertCompetitorPrice, arg.ProductID, arg.Competitor, arg.Price, arg.ObservedAt)
	return err
}
