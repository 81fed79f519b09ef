package bootstrap

import (
	"context"

	"dynamic-pricing/internal/infra/events"
	"dynamic-pricing/internal/pkg/config"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/worker"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(worker.Publisher)),
		),
		func(cfg config.Config) commands.EventTopic {
			return commands.EventTopic(cfg.Kafka.PriceTopic)
		},
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) *events.KafkaPublisher {
	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka.Brokers))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
