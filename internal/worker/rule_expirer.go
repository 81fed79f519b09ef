package worker

import (
	"context"
	"log/slog"

	"dynamic-pricing/internal/pkg/metrics"
)

const expiryBatchSize = 500

type RuleExpiry interface {
	ExpireDue(ctx context.Context, limit int) (int, error)
}

type RuleExpirer struct {
	rules RuleExpiry
}

func NewRuleExpirer(rules RuleExpiry) *RuleExpirer {
	return &RuleExpirer{rules: rules}
}

// RunOnce drains every rule whose end date has passed, one batch at a time.
func (e *RuleExpirer) RunOnce(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := e.rules.ExpireDue(ctx, expiryBatchSize)
		total += n
		metrics.RulesExpiredTotal.Add(float64(n))
		if err != nil {
			return total, err
		}
		if n < expiryBatchSize {
			break
		}
	}
	if total > 0 {
		slog.InfoContext(ctx, "pricing rules expired", "count", total)
	}
	return total, nil
}
