package readstore

import (
	"context"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/pkg/pgconv"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SignalReadQueries interface {
	GetDemandCounts(ctx context.Context, db query.DBTX, productID uuid.UUID, since, until pgtype.Timestamptz) (query.DemandCounts, error)
	ListLatestCompetitorPrices(ctx context.Context, db query.DBTX, productID uuid.UUID, since, until pgtype.Timestamptz) ([]int64, error)
}

type SignalReadStore struct {
	queries SignalReadQueries
	db      db.DBTX
}

func NewSignalReadStore(queries SignalReadQueries, db db.DBTX) *SignalReadStore {
	return &SignalReadStore{
		queries: queries,
		db:      db,
	}
}

// Snapshot aggregates demand over pricing.DemandWindow and takes the latest
// observation per competitor within shared.CompetitorLookback. Signals
// stamped after now are left out of both.
func (r *SignalReadStore) Snapshot(ctx context.Context, productID uuid.UUID, now time.Time) (*shared.SignalSnapshot, error) {
	until := pgconv.TimeToPgtype(now)
	counts, err := r.queries.GetDemandCounts(ctx, r.db, productID, pgconv.TimeToPgtype(now.Add(-pricing.DemandWindow)), until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate demand signals", err)
	}
	prices, err := r.queries.ListLatestCompetitorPrices(ctx, r.db, productID, pgconv.TimeToPgtype(now.Add(-shared.CompetitorLookback)), until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list competitor prices", err)
	}
	return &shared.SignalSnapshot{
		RecentViews:      int(counts.Views),
		RecentPurchases:  int(counts.Purchases),
		CompetitorPrices: prices,
	}, nil
}
