package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `
INSERT INTO outbox_events (id, topic, event_key, payload, created_at)
VALUES ($1, $2, $3, $4, $5)`

type InsertOutboxEventParams struct {
	ID        uuid.UUID
	Topic     string
	EventKey  string
	Payload   []byte
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent, arg.ID, arg.Topic, arg.EventKey, arg.Payload, arg.CreatedAt)
	return err
}

const listPendingOutboxEvents = `
SELECT id, topic, event_key, payload, status, attempts, last_error, created_at, sent_at
FROM outbox_events
WHERE status = 'pending'
ORDER BY seq
LIMIT $1
FOR UPDATE`

func (q *Queries) ListPendingOutboxEvents(ctx context.Context, db DBTX, limit int32) ([]OutboxEvent, error) {
	rows, err := db.Query(ctx, listPendingOutboxEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutboxEvent
	for rows.Next() {
		var i OutboxEvent
		if err := rows.Scan(
			&i.ID,
			&i.Topic,
			&i.EventKey,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.CreatedAt,
			&i.SentAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxEventSent = `
UPDATE outbox_events
SET status   = 'sent',
    attempts = attempts + 1,
    sent_at  = $2
WHERE id = $1`

func (q *Queries) MarkOutboxEventSent(ctx context.Context, db DBTX, id uuid.UUID, sentAt pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markOutboxEventSent, id, sentAt)
	return err
}

const markOutboxEventFailed = `
UPDATE outbox_events
SET attempts   = attempts + 1,
    last_error = $2
WHERE id = $1`

func (q *Queries) MarkOutboxEventFailed(ctx context.Context, db DBTX, id uuid.UUID, lastError string) error {
	_, err := db.Exec(ctx, markOutboxEventFailed, id, lastError)
	return err
}

const tryAdvisoryXactLock = `SELECT pg_try_advisory_xact_lock($1)`

func (q *Queries) TryAdvisoryXactLock(ctx context.Context, db DBTX, key int64) (bool, error) {
	var locked bool
	err := db.QueryRow(ctx, tryAdvisoryXactLock, key).Scan(&locked)
	return locked, err
}
