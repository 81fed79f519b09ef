package shared

import (
	"context"
	"log/slog"

	"dynamic-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

// RuleCache holds the active rule set per product. A miss is reported with
// ok=false and a nil error.
type RuleCache interface {
	ActiveRules(ctx context.Context, productID uuid.UUID) (rules []*pricing.Rule, ok bool, err error)
	StoreActiveRules(ctx context.Context, productID uuid.UUID, rules []*pricing.Rule) error
	Invalidate(ctx context.Context, productIDs ...uuid.UUID) error
}

// LoadActiveRules reads through the cache. Cache errors only cost a database
// round trip, so they are logged and never returned.
func LoadActiveRules(ctx context.Context, cache RuleCache, reads CommandReads, productID uuid.UUID) ([]*pricing.Rule, error) {
	if cache != nil {
		rules, ok, err := cache.ActiveRules(ctx, productID)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "rule cache read failed", "product_id", productID, "error", err)
		case ok:
			return rules, nil
		}
	}

	rules, err := reads.ActiveRules(ctx, productID)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.StoreActiveRules(ctx, productID, rules); err != nil {
			slog.WarnContext(ctx, "rule cache write failed", "product_id", productID, "error", err)
		}
	}
	return rules, nil
}

// InvalidateRules drops cached rule sets after a committed write.
func InvalidateRules(ctx context.Context, cache RuleCache, productIDs ...uuid.UUID) {
	if cache == nil || len(productIDs) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, productIDs...); err != nil {
		slog.WarnContext(ctx, "rule cache invalidation failed", "product_ids", productIDs, "error", err)
	}
}
