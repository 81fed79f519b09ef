package bootstrap

import (
	"context"
	"fmt"

	"dynamic-pricing/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewRedisClient,
			fx.As(new(redis.UniversalClient)),
		),
	),
)

// Rule cache errors are non-fatal, so startup does not wait for Redis.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := client.Close(); err != nil {
				return fmt.Errorf("failed to close redis client: %w", err)
			}
			return nil
		},
	})

	return client
}
