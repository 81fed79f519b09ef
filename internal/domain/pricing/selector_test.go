//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRule(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	t.Run("highest priority wins", func(t *testing.T) {
		low := builder.NewPricingRuleBuilder().WithPriority(pricing.PriorityLow).BuildStored()
		critical := builder.NewPricingRuleBuilder().WithPriority(pricing.PriorityCritical).WithUpdatedAt(past).BuildStored()
		high := builder.NewPricingRuleBuilder().WithPriority(pricing.PriorityHigh).BuildStored()

		got, ok := pricing.SelectRule([]*pricing.Rule{low, critical, high}, now)
		require.True(t, ok)
		assert.Equal(t, critical.ID(), got.ID())
	})

	t.Run("same priority prefers the most recently updated", func(t *testing.T) {
		older := builder.NewPricingRuleBuilder().WithUpdatedAt(past).BuildStored()
		newer := builder.NewPricingRuleBuilder().WithUpdatedAt(yesterday).BuildStored()

		got, ok := pricing.SelectRule([]*pricing.Rule{older, newer}, now)
		require.True(t, ok)
		assert.Equal(t, newer.ID(), got.ID())
	})

	t.Run("full tie is broken by id", func(t *testing.T) {
		a := builder.NewPricingRuleBuilder().WithID(uuid.MustParse("00000000-0000-0000-0000-000000000001")).WithUpdatedAt(past).BuildStored()
		b := builder.NewPricingRuleBuilder().WithID(uuid.MustParse("00000000-0000-0000-0000-000000000002")).WithUpdatedAt(past).BuildStored()

		first, _ := pricing.SelectRule([]*pricing.Rule{a, b}, now)
		second, _ := pricing.SelectRule([]*pricing.Rule{b, a}, now)
		assert.Equal(t, b.ID(), first.ID())
		assert.Equal(t, b.ID(), second.ID())
	})

	t.Run("skips rules that do not apply", func(t *testing.T) {
		end := yesterday
		expired := builder.NewPricingRuleBuilder().WithPriority(pricing.PriorityCritical).WithWindow(nil, &end).BuildStored()
		paused := builder.NewPricingRuleBuilder().WithPriority(pricing.PriorityCritical).WithStatus(pricing.StatusPaused).BuildStored()
		active := builder.NewPricingRuleBuilder().WithPriority(pricing.PriorityLow).BuildStored()

		got, ok := pricing.SelectRule([]*pricing.Rule{expired, nil, paused, active}, now)
		require.True(t, ok)
		assert.Equal(t, active.ID(), got.ID())
	})

	t.Run("nothing applicable", func(t *testing.T) {
		draft := builder.NewPricingRuleBuilder().WithStatus(pricing.StatusDraft).BuildStored()

		got, ok := pricing.SelectRule([]*pricing.Rule{draft}, now)
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}
