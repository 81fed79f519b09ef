package components

import (
	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/usecase"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/queries"
	"dynamic-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(predictor pricing.Predictor) pricing.PriceCalculator {
		return shared.ObserveCalculator(pricing.NewCalculator(predictor))
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPricingRuleUseCase,
		commands.NewPriceUseCase,
		commands.NewSignalUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingRuleQueries,
		queries.NewPriceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
