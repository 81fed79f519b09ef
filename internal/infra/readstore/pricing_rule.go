package readstore

import (
	"context"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/infra/repository/converter"
	"dynamic-pricing/internal/pkg/pgconv"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingRuleReadQueries interface {
	GetPricingRule(ctx context.Context, db query.DBTX, id uuid.UUID) (query.PricingRule, error)
	ListPricingRulesByProduct(ctx context.Context, db query.DBTX, productID uuid.UUID) ([]query.PricingRule, error)
	ListPricingRulesByProductAndStatus(ctx context.Context, db query.DBTX, productID uuid.UUID, status string) ([]query.PricingRule, error)
}

type PricingRuleReadStore struct {
	queries PricingRuleReadQueries
	db      db.DBTX
}

func NewPricingRuleReadStore(queries PricingRuleReadQueries, db db.DBTX) *PricingRuleReadStore {
	return &PricingRuleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PricingRuleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PricingRuleView, error) {
	row, err := r.queries.GetPricingRule(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pricing rule view", err)
	}
	return toPricingRuleView(row), nil
}

func (r *PricingRuleReadStore) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*queries.PricingRuleView, error) {
	rows, err := r.queries.ListPricingRulesByProduct(ctx, r.db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules by product", err)
	}
	return toPricingRuleViews(rows), nil
}

func (r *PricingRuleReadStore) ListByProductAndStatus(ctx context.Context, productID uuid.UUID, status string) ([]*queries.PricingRuleView, error) {
	rows, err := r.queries.ListPricingRulesByProductAndStatus(ctx, r.db, productID, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules by product and status", err)
	}
	return toPricingRuleViews(rows), nil
}

func toPricingRuleView(row query.PricingRule) *queries.PricingRuleView {
	// A corrupt column is shown as an empty object; evaluation reports it.
	settings, err := converter.DecodeSettings(row.Configuration)
	if err != nil {
		settings = nil
	}
	cfg := map[string]any(settings)
	if cfg == nil {
		cfg = map[string]any{}
	}
	return &queries.PricingRuleView{
		ID:            row.ID,
		ProductID:     row.ProductID,
		Name:          row.Name,
		RuleType:      row.RuleType,
		Status:        row.Status,
		Priority:      row.Priority,
		MinPrice:      pgconv.Int64PtrFromPgtype(row.MinPrice),
		MaxPrice:      pgconv.Int64PtrFromPgtype(row.MaxPrice),
		StartsAt:      pgconv.TimePtrFromPgtype(row.StartsAt),
		EndsAt:        pgconv.TimePtrFromPgtype(row.EndsAt),
		Configuration: cfg,
		CreatedBy:     pgconv.UUIDPtrFromPgtype(row.CreatedBy),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toPricingRuleViews(rows []query.PricingRule) []*queries.PricingRuleView {
	out := make([]*queries.PricingRuleView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPricingRuleView(row))
	}
	return out
}
