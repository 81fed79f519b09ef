package bootstrap

import (
	"log/slog"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra/predictor"
	"dynamic-pricing/internal/pkg/config"

	"go.uber.org/fx"
)

var PredictorModule = fx.Module("predictor",
	fx.Provide(
		NewPredictor,
	),
)

// NewPredictor returns a nil Predictor when no URL is configured.
func NewPredictor(cfg config.Config, logger *slog.Logger) pricing.Predictor {
	if cfg.Predictor.URL == "" {
		logger.Warn("PREDICTOR_URL is not set; ai_optimized rules will keep the base price")
		return nil
	}
	return predictor.NewHTTPPredictor(cfg.Predictor.URL, cfg.Predictor.Timeout)
}
