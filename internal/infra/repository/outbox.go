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
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxQueries interface {
	InsertOutboxEvent(ctx context.Context, db query.DBTX, arg query.InsertOutboxEventParams) error
	ListPendingOutboxEvents(ctx context.Context, db query.DBTX, limit int32) ([]query.OutboxEvent, error)
	MarkOutboxEventSent(ctx context.Context, db query.DBTX, id uuid.UUID, sentAt pgtype.Timestamptz) error
	MarkOutboxEventFailed(ctx context.Context, db query.DBTX, id uuid.UUID, lastError string) error
	TryAdvisoryXactLock(ctx context.Context, db query.DBTX, key int64) (bool, error)
}

// outboxRelayLockKey is the advisory lock that makes one relay at a time
// the owner of the outbox.
const outboxRelayLockKey int64 = 0x6f7574626f78 // "outbox"

type OutboxRepository struct {
	queries OutboxQueries
	db      db.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db db.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx db.DBTX, msg shared.OutboxMessage) error {
	id := msg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	err := r.queries.InsertOutboxEvent(ctx, tx, query.InsertOutboxEventParams{
		ID:        id,
		Topic:     msg.Topic,
		EventKey:  msg.Key,
		Payload:   msg.Payload,
		CreatedAt: pgconv.TimeToPgtype(msg.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

// LockRelay takes the relay lock for the lifetime of tx. It reports false
// when another relay holds it.
func (r *OutboxRepository) LockRelay(ctx context.Context, tx db.DBTX) (bool, error) {
	locked, err := r.queries.TryAdvisoryXactLock(ctx, tx, outboxRelayLockKey)
	if err != nil {
		return false, infra.WrapRepoErr("failed to take outbox relay lock", err)
	}
	return locked, nil
}

// Pending returns the oldest pending rows in seq order, locked until tx ends.
func (r *OutboxRepository) Pending(ctx context.Context, tx db.DBTX, limit int) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.ListPendingOutboxEvents(ctx, tx, int32(limit)) // #nosec G115 -- batch sizes come from config
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending outbox events", err)
	}
	out := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.OutboxMessage{
			ID:        row.ID,
			Topic:     row.Topic,
			Key:       row.EventKey,
			Payload:   row.Payload,
			Attempts:  int(row.Attempts),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error {
	if err := r.queries.MarkOutboxEventSent(ctx, tx, id, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, reason string) error {
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, id, reason); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
