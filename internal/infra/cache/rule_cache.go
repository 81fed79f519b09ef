package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/repository/converter"
	"dynamic-pricing/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const activeRulesKeyPrefix = "pricing:rules:active:"

// RuleCache stores each product's active rule set as one JSON document.
// An empty set is cached as well, so products without rules skip the database.
type RuleCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRuleCache(client redis.UniversalClient, ttl time.Duration) *RuleCache {
	return &RuleCache{client: client, ttl: ttl}
}

type cachedRule struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Priority  string          `json:"priority"`
	MinPrice  *int64          `json:"min_price,omitempty"`
	MaxPrice  *int64          `json:"max_price,omitempty"`
	StartsAt  *time.Time      `json:"starts_at,omitempty"`
	EndsAt    *time.Time      `json:"ends_at,omitempty"`
	Settings  json.RawMessage `json:"settings"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func activeRulesKey(productID uuid.UUID) string {
	return activeRulesKeyPrefix + productID.String()
}

func (c *RuleCache) ActiveRules(ctx context.Context, productID uuid.UUID) ([]*pricing.Rule, bool, error) {
	raw, err := c.client.Get(ctx, activeRulesKey(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheLookup("miss")
			return nil, false, nil
		}
		metrics.RecordCacheLookup("error")
		return nil, false, infra.WrapRepoErr("failed to read rule cache", err, infra.KindCacheFailure)
	}

	var entries []cachedRule
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Unreadable entries are treated as a miss and overwritten on reload.
		metrics.RecordCacheLookup("error")
		return nil, false, infra.WrapRepoErr("failed to decode rule cache entry", err, infra.KindCacheFailure)
	}

	rules := make([]*pricing.Rule, 0, len(entries))
	for _, e := range entries {
		settings, err := converter.DecodeSettings(e.Settings)
		if err != nil {
			settings = pricing.Settings{}
		}
		rules = append(rules, pricing.ReconstructRule(pricing.RuleParams{
			ID:        e.ID,
			ProductID: e.ProductID,
			Name:      e.Name,
			Type:      e.Type,
			Status:    e.Status,
			Priority:  e.Priority,
			MinPrice:  e.MinPrice,
			MaxPrice:  e.MaxPrice,
			StartsAt:  e.StartsAt,
			EndsAt:    e.EndsAt,
			Settings:  settings,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		}))
	}
	metrics.RecordCacheLookup("hit")
	return rules, true, nil
}

func (c *RuleCache) StoreActiveRules(ctx context.Context, productID uuid.UUID, rules []*pricing.Rule) error {
	entries := make([]cachedRule, 0, len(rules))
	for _, r := range rules {
		settings, err := converter.EncodeSettings(r.Settings())
		if err != nil {
			return infra.WrapRepoErr("failed to encode rule settings for cache", err, infra.KindCacheFailure)
		}
		entries = append(entries, cachedRule{
			ID:        r.ID(),
			ProductID: r.ProductID(),
			Name:      r.Name(),
			Type:      r.Type().String(),
			Status:    r.Status().String(),
			Priority:  r.Priority().String(),
			MinPrice:  r.Bounds().Min(),
			MaxPrice:  r.Bounds().Max(),
			StartsAt:  r.Window().Start(),
			EndsAt:    r.Window().End(),
			Settings:  settings,
			CreatedAt: r.CreatedAt(),
			UpdatedAt: r.UpdatedAt(),
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return infra.WrapRepoErr("failed to encode rule cache entry", err, infra.KindCacheFailure)
	}
	if err := c.client.Set(ctx, activeRulesKey(productID), raw, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write rule cache", err, infra.KindCacheFailure)
	}
	return nil
}

func (c *RuleCache) Invalidate(ctx context.Context, productIDs ...uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, activeRulesKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate rule cache", err, infra.KindCacheFailure)
	}
	return nil
}
