package components

import (
	"dynamic-pricing/internal/handler"
	"dynamic-pricing/internal/handler/api"
	"dynamic-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingRuleHandler,
		api.NewPriceHandler,
		api.NewSignalHandler,
		func(rules *api.PricingRuleHandler, prices *api.PriceHandler, signals *api.SignalHandler) handler.Handlers {
			return handler.Handlers{
				PricingRules: rules,
				Prices:       prices,
				Signals:      signals,
			}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
