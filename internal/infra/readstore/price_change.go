package readstore

import (
	"context"
	"time"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/pkg/pgconv"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceChangeReadQueries interface {
	ListPriceChangesFirstPage(ctx context.Context, db query.DBTX, productID uuid.UUID, limit int32) ([]query.PriceChange, error)
	ListPriceChangesKeyset(ctx context.Context, db query.DBTX, arg query.ListPriceChangesKeysetParams) ([]query.PriceChange, error)
}

type PriceChangeReadStore struct {
	queries PriceChangeReadQueries
	db      db.DBTX
}

func NewPriceChangeReadStore(queries PriceChangeReadQueries, db db.DBTX) *PriceChangeReadStore {
	return &PriceChangeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PriceChangeReadStore) FindByProductFirstPage(ctx context.Context, productID uuid.UUID, limit int32) ([]*queries.PriceChangeView, error) {
	rows, err := r.queries.ListPriceChangesFirstPage(ctx, r.db, productID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price changes first page", err)
	}
	return toPriceChangeViews(rows)
}

func (r *PriceChangeReadStore) FindByProductKeyset(ctx context.Context, productID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PriceChangeView, error) {
	rows, err := r.queries.ListPriceChangesKeyset(ctx, r.db, query.ListPriceChangesKeysetParams{
		ProductID: productID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price changes by keyset", err)
	}
	return toPriceChangeViews(rows)
}

func toPriceChangeViews(rows []query.PriceChange) ([]*queries.PriceChangeView, error) {
	out := make([]*queries.PriceChangeView, 0, len(rows))
	for _, row := range rows {
		pct, err := pgconv.DecimalFromNumeric(row.PercentChange)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid percent change on price change "+row.ID.String(), err, infra.KindDBFailure)
		}
		out = append(out, &queries.PriceChangeView{
			ID:            row.ID,
			ProductID:     row.ProductID,
			RuleID:        pgconv.UUIDPtrFromPgtype(row.RuleID),
			OldPrice:      row.OldPrice,
			NewPrice:      row.NewPrice,
			PercentChange: pct.StringFixed(2),
			Source:        row.Source,
			Reason:        row.Reason,
			ActorID:       pgconv.UUIDPtrFromPgtype(row.ActorID),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
