package shared

import (
	"context"
	"log/slog"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/pkg/metrics"
)

type observedCalculator struct {
	next pricing.PriceCalculator
}

// ObserveCalculator counts every evaluation and logs fallbacks, which are
// data quality problems the caller never sees as errors.
func ObserveCalculator(next pricing.PriceCalculator) pricing.PriceCalculator {
	return &observedCalculator{next: next}
}

func (c *observedCalculator) Calculate(ctx context.Context, basePrice int64, rule *pricing.Rule, ec pricing.EvaluationContext) pricing.Quote {
	q := c.next.Calculate(ctx, basePrice, rule, ec)
	metrics.RecordEvaluation(q.RuleType.String(), string(q.Outcome))
	if q.Outcome == pricing.OutcomeFallback {
		slog.WarnContext(ctx, "rule evaluation fell back to base price",
			"rule_id", q.RuleID,
			"rule_type", q.RuleType,
			"base_price", basePrice,
			"issue", q.Issue)
	}
	return q
}
