package repository

import (
	"context"
	"time"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/pkg/pgconv"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type SignalWriteQueries interface {
	InsertProductEvent(ctx context.Context, db query.DBTX, arg query.InsertProductEventParams) error
	InsertCompetitorPrice(ctx context.Context, db query.DBTX, arg query.InsertCompetitorPriceParams) error
}

type SignalRepository struct {
	queries SignalWriteQueries
	db      db.DBTX
}

func NewSignalRepository(queries SignalWriteQueries, db db.DBTX) *SignalRepository {
	return &SignalRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SignalRepository) RecordEvent(ctx context.Context, tx db.DBTX, productID uuid.UUID, kind shared.EventKind, quantity int, at time.Time) error {
	err := r.queries.InsertProductEvent(ctx, tx, query.InsertProductEventParams{
		ProductID:  productID,
		Kind:       string(kind),
		Quantity:   int32(quantity), // #nosec G115 -- RecordEvent caps quantity at MaxInt32
		OccurredAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record product event", err)
	}
	return nil
}

func (r *SignalRepository) RecordCompetitorPrice(ctx context.Context, tx db.DBTX, productID uuid.UUID, competitor string, price int64, at time.Time) error {
	err := r.queries.InsertCompetitorPrice(ctx, tx, query.InsertCompetitorPriceParams{
		ProductID:  productID,
		Competitor: competitor,
		Price:      price,
		ObservedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record competitor price", err)
	}
	return nil
}
