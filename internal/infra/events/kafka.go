package events

import (
	"context"
	"time"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes outbox messages synchronously. Messages are keyed by
// product so one product's price changes stay ordered on one partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  msg.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(msg.ID.String())},
			{Key: "content_type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to publish "+msg.Topic+" event", err, infra.KindPublishFailure)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
