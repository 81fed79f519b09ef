package worker

import (
	"context"
	"log/slog"

	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/metrics"
	"dynamic-pricing/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, msg shared.OutboxMessage) error
}

// OutboxRelay forwards committed outbox rows to the broker. Every service
// instance runs one, but only the holder of the relay lock publishes in a
// given batch, which keeps each key in seq order.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	batchSize int
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, batchSize int) *OutboxRelay {
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		batchSize: batchSize,
	}
}

// RunOnce relays one batch and reports how many messages were sent. Once a
// message fails, later messages with the same key wait for the next batch.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		locked, err := tx.Outbox().LockRelay(ctx, tx.DB())
		if err != nil {
			return err
		}
		if !locked {
			slog.DebugContext(ctx, "outbox relay lock held elsewhere")
			return nil
		}
		msgs, err := tx.Outbox().Pending(ctx, tx.DB(), r.batchSize)
		if err != nil {
			return err
		}

		blocked := make(map[string]struct{})
		for _, msg := range msgs {
			if _, ok := blocked[msg.Key]; ok {
				continue
			}
			if pubErr := r.publisher.Publish(ctx, msg); pubErr != nil {
				metrics.RecordOutboxPublish(msg.Topic, false)
				slog.WarnContext(ctx, "outbox publish failed",
					"event_id", msg.ID.String(),
					"topic", msg.Topic,
					"attempts", msg.Attempts+1,
					"error", pubErr)
				blocked[msg.Key] = struct{}{}
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), msg.ID, pubErr.Error()); err != nil {
					return err
				}
				continue
			}
			metrics.RecordOutboxPublish(msg.Topic, true)
			if err := tx.Outbox().MarkSent(ctx, tx.DB(), msg.ID, r.clock.Now()); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		slog.DebugContext(ctx, "outbox batch relayed", "sent", sent)
	}
	return sent, nil
}
