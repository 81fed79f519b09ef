package components

import (
	"dynamic-pricing/internal/infra/cache"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/infra/readstore"
	"dynamic-pricing/internal/infra/uow"
	"dynamic-pricing/internal/pkg/config"
	"dynamic-pricing/internal/usecase/queries"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	NewRuleCache,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Product
		fx.Annotate(
			query.New,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		// PriceChange
		fx.Annotate(
			query.New,
			fx.As(new(readstore.PriceChangeReadQueries)),
		),
		fx.Annotate(
			readstore.NewPriceChangeReadStore,
			fx.As(new(queries.PriceChangeReadStore)),
		),
		// PricingRule
		fx.Annotate(
			query.New,
			fx.As(new(readstore.PricingRuleReadQueries)),
		),
		fx.Annotate(
			readstore.NewPricingRuleReadStore,
			fx.As(new(queries.PricingRuleReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewRuleCache(client redis.UniversalClient, cfg config.Config) shared.RuleCache {
	return cache.NewRuleCache(client, cfg.Redis.RuleTTL)
}
