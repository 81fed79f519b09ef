package repository

import (
	"context"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/infra/repository/converter"
	"dynamic-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PricingRuleQueries interface {
	CreatePricingRule(ctx context.Context, db query.DBTX, arg query.CreatePricingRuleParams) error
	UpdatePricingRule(ctx context.Context, db query.DBTX, arg query.UpdatePricingRuleParams) (int64, error)
	GetPricingRule(ctx context.Context, db query.DBTX, id uuid.UUID) (query.PricingRule, error)
	GetPricingRuleForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.PricingRule, error)
	ListPricingRulesByProductAndStatus(ctx context.Context, db query.DBTX, productID uuid.UUID, status string) ([]query.PricingRule, error)
	ListExpirablePricingRules(ctx context.Context, db query.DBTX, now pgtype.Timestamptz, limit int32) ([]query.PricingRule, error)
}

type PricingRuleRepository struct {
	queries PricingRuleQueries
	db      db.DBTX
}

func NewPricingRuleRepository(queries PricingRuleQueries, db db.DBTX) *PricingRuleRepository {
	return &PricingRuleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PricingRuleRepository) Create(ctx context.Context, tx db.DBTX, rule *pricing.Rule, createdBy *uuid.UUID) error {
	params, err := converter.RuleToCreateParams(rule, createdBy)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing rule", err, infra.KindDBFailure)
	}
	if err := r.queries.CreatePricingRule(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create pricing rule", err)
	}
	return nil
}

func (r *PricingRuleRepository) Update(ctx context.Context, tx db.DBTX, rule *pricing.Rule) error {
	params, err := converter.RuleToUpdateParams(rule)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing rule", err, infra.KindDBFailure)
	}
	affected, err := r.queries.UpdatePricingRule(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing rule", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PricingRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	row, err := r.queries.GetPricingRule(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pricing rule", err)
	}
	return converter.RuleFromRow(row), nil
}

func (r *PricingRuleRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	row, err := r.queries.GetPricingRuleForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock pricing rule", err)
	}
	return converter.RuleFromRow(row), nil
}

func (r *PricingRuleRepository) ListActive(ctx context.Context, productID uuid.UUID) ([]*pricing.Rule, error) {
	rows, err := r.queries.ListPricingRulesByProductAndStatus(ctx, r.db, productID, pricing.StatusActive.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active pricing rules", err)
	}
	return converter.RulesFromRows(rows), nil
}

func (r *PricingRuleRepository) ListExpirable(ctx context.Context, now time.Time, limit int) ([]*pricing.Rule, error) {
	rows, err := r.queries.ListExpirablePricingRules(ctx, r.db, pgconv.TimeToPgtype(now), int32(limit)) // #nosec G115 -- batch sizes come from config
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expirable pricing rules", err)
	}
	return converter.RulesFromRows(rows), nil
}
