//go:build unit

package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	msg := shared.OutboxMessage{
		ID:        uuid.New(),
		Topic:     "price.changed",
		Key:       uuid.NewString(),
		Payload:   []byte(`{"new_price":800}`),
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("maps the outbox row onto a keyed message", func(t *testing.T) {
		w := &recordingWriter{}
		p := NewKafkaPublisher(w)

		require.NoError(t, p.Publish(context.Background(), msg))

		require.Len(t, w.written, 1)
		got := w.written[0]
		assert.Equal(t, "price.changed", got.Topic)
		assert.Equal(t, []byte(msg.Key), got.Key)
		assert.JSONEq(t, `{"new_price":800}`, string(got.Value))
		assert.Equal(t, msg.CreatedAt, got.Time)
		assert.Contains(t, got.Headers, kafka.Header{Key: "event_id", Value: []byte(msg.ID.String())})
	})

	t.Run("write failures are publish failures", func(t *testing.T) {
		p := NewKafkaPublisher(&recordingWriter{err: errors.New("leader not available")})

		err := p.Publish(context.Background(), msg)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindPublishFailure))
	})

	t.Run("close releases the writer", func(t *testing.T) {
		w := &recordingWriter{}
		require.NoError(t, NewKafkaPublisher(w).Close())
		assert.True(t, w.closed)
	})
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"kafka-1:9092", "kafka-2:9092"})

	assert.NotNil(t, w.Addr)
	assert.Empty(t, w.Topic)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
