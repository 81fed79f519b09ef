package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const pricingRuleColumns = `id, product_id, name, rule_type, status, priority, min_price, max_price,
       starts_at, ends_at, configuration, created_by, created_at, updated_at`

const createPricingRule = `
INSERT INTO pricing_rules (id, product_id, name, rule_type, status, priority, min_price, max_price,
                           starts_at, ends_at, configuration, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

type CreatePricingRuleParams struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Name          string
	RuleType      string
	Status        string
	Priority      string
	MinPrice      pgtype.Int8
	MaxPrice      pgtype.Int8
	StartsAt      pgtype.Timestamptz
	EndsAt        pgtype.Timestamptz
	Configuration []byte
	CreatedBy     pgtype.UUID
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreatePricingRule(ctx context.Context, db DBTX, arg CreatePricingRuleParams) error {
	_, err := db.Exec(ctx, createPricingRule,
		arg.ID,
		arg.ProductID,
		arg.Name,
		arg.RuleType,
		arg.Status,
		arg.Priority,
		arg.MinPrice,
		arg.MaxPrice,
		arg.StartsAt,
		arg.EndsAt,
		arg.Configuration,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updatePricingRule = `
UPDATE pricing_rules
SET name          = $2,
    status        = $3,
    priority      = $4,
    min_price     = $5,
    max_price     = $6,
    starts_at     = $7,
    ends_at       = $8,
    configuration = $9,
    updated_at    = $10
WHERE id = $1`

type UpdatePricingRuleParams struct {
	ID            uuid.UUID
	Name          string
	Status        string
	Priority      string
	MinPrice      pgtype.Int8
	MaxPrice      pgtype.Int8
	StartsAt      pgtype.Timestamptz
	EndsAt        pgtype.Timestamptz
	Configuration []byte
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdatePricingRule(ctx context.Context, db DBTX, arg UpdatePricingRuleParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePricingRule,
		arg.ID,
		arg.Name,
		arg.Status,
		arg.Priority,
		arg.MinPrice,
		arg.MaxPrice,
		arg.StartsAt,
		arg.EndsAt,
		arg.Configuration,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getPricingRule = `SELECT ` + pricingRuleColumns + ` FROM pricing_rules WHERE id = $1`

func (q *Queries) GetPricingRule(ctx context.Context, db DBTX, id uuid.UUID) (PricingRule, error) {
	return scanPricingRule(db.QueryRow(ctx, getPricingRule, id))
}

const getPricingRuleForUpdate = getPricingRule + ` FOR UPDATE`

func (q *Queries) GetPricingRuleForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (PricingRule, error) {
	return scanPricingRule(db.QueryRow(ctx, getPricingRuleForUpdate, id))
}

const listPricingRulesByProduct = `
SELECT ` + pricingRuleColumns + `
FROM pricing_rules
WHERE product_id = $1
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListPricingRulesByProduct(ctx context.Context, db DBTX, productID uuid.UUID) ([]PricingRule, error) {
	rows, err := db.Query(ctx, listPricingRulesByProduct, productID)
	if err != nil {
		return nil, err
	}
	return collectPricingRules(rows)
}

const listPricingRulesByProductAndStatus = `
SELECT ` + pricingRuleColumns + `
FROM pricing_rules
WHERE product_id = $1 AND status = $2
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListPricingRulesByProductAndStatus(ctx context.Context, db DBTX, productID uuid.UUID, status string) ([]PricingRule, error) {
	rows, err := db.Query(ctx, listPricingRulesByProductAndStatus, productID, status)
	if err != nil {
		return nil, err
	}
	return collectPricingRules(rows)
}

const listExpirablePricingRules = `
SELECT ` + pricingRuleColumns + `
FROM pricing_rules
WHERE status IN ('active', 'paused') AND ends_at < $1
ORDER BY ends_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ListExpirablePricingRules(ctx context.Context, db DBTX, now pgtype.Timestamptz, limit int32) ([]PricingRule, error) {
	rows, err := db.Query(ctx, listExpirablePricingRules, now, limit)
	if err != nil {
		return nil, err
	}
	return collectPricingRules(rows)
}

func scanPricingRule(row pgx.Row) (PricingRule, error) {
	var i PricingRule
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.Name,
		&i.RuleType,
		&i.Status,
		&i.Priority,
		&i.MinPrice,
		&i.MaxPrice,
		&i.StartsAt,
		&i.EndsAt,
		&i.Configuration,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectPricingRules(rows pgx.Rows) ([]PricingRule, error) {
	defer rows.Close()
	var items []PricingRule
	for rows.Next() {
		i, err := scanPricingRule(rows)
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
