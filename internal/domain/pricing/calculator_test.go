//go:build unit

package pricing_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/pkg/ptr"
	"dynamic-pricing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	price int64
	err   error
	calls []pricing.PredictionInput
}

func (p *stubPredictor) PredictPrice(_ context.Context, in pricing.PredictionInput) (int64, error) {
	p.calls = append(p.calls, in)
	return p.price, p.err
}

var noon = time.Date(2025, 12, 10, 12, 30, 0, 0, time.UTC)

type calcCase struct {
	name    string
	base    int64
	rule    *builder.PricingRuleBuilder
	ec      pricing.EvaluationContext
	want    int64
	outcome pricing.Outcome
}

func runCalcCases(t *testing.T, calc *pricing.Calculator, cases []calcCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rule, err := c.rule.BuildDomain()
			require.NoError(t, err)
			if c.ec.At.IsZero() {
				c.ec.At = noon
			}

			q := calc.Calculate(context.Background(), c.base, rule, c.ec)

			assert.Equal(t, c.want, q.Price)
			assert.Equal(t, c.outcome, q.Outcome)
			assert.Equal(t, c.base, q.BasePrice)
			assert.Equal(t, rule.ID(), q.RuleID)
			assert.NoError(t, q.Issue)
		})
	}
}

func TestCalculator_TimeBased(t *testing.T) {
	calc := pricing.NewCalculator(nil)
	flash := func(active bool) *builder.PricingRuleBuilder {
		return builder.NewPricingRuleBuilder().WithSettings(pricing.RuleTypeTimeBased, map[string]any{
			"happy_hours":         []any{12, 13},
			"happy_hour_discount": 20,
			"flash_sale_active":   active,
			"flash_sale_discount": 10,
		})
	}

	runCalcCases(t, calc, []calcCase{
		{
			name:    "happy hour applies 20% discount",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder(),
			want:    800,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "outside happy hour without flash sale",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder(),
			ec:      pricing.EvaluationContext{At: noon.Add(3 * time.Hour)},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
		{
			name:    "flash sale outside happy hour",
			base:    1000,
			rule:    flash(true),
			ec:      pricing.EvaluationContext{At: noon.Add(3 * time.Hour)},
			want:    900,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "happy hour wins over flash sale",
			base:    1000,
			rule:    flash(true),
			want:    800,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "inactive flash sale",
			base:    1000,
			rule:    flash(false),
			ec:      pricing.EvaluationContext{At: noon.Add(3 * time.Hour)},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
	})
}

func TestCalculator_InventoryBased(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	runCalcCases(t, calc, []calcCase{
		{
			name:    "stock 5 of threshold 10 gives 35%",
			base:    2000,
			rule:    builder.NewPricingRuleBuilder().AsInventory(10, 25),
			ec:      pricing.EvaluationContext{StockLevel: 5},
			want:    1300,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "stock at threshold gives base discount",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsInventory(10, 25),
			ec:      pricing.EvaluationContext{StockLevel: 10},
			want:    750,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "discount capped at 50%",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsInventory(10, 40),
			ec:      pricing.EvaluationContext{StockLevel: 1},
			want:    500,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "zero stock unchanged",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsInventory(10, 25),
			ec:      pricing.EvaluationContext{StockLevel: 0},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
		{
			name:    "above threshold unchanged",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsInventory(10, 25),
			ec:      pricing.EvaluationContext{StockLevel: 11},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
	})
}

func TestCalculator_DemandBased(t *testing.T) {
	calc := pricing.NewCalculator(nil)
	rule := func() *builder.PricingRuleBuilder {
		return builder.NewPricingRuleBuilder().AsDemand(100, 10, 15, 10)
	}

	assert.True(t, pricing.DemandScore(500, 6).Equal(pricing.DemandScore(1100, 0)))

	runCalcCases(t, calc, []calcCase{
		{
			name:    "surge above high threshold",
			base:    1000,
			rule:    rule(),
			ec:      pricing.EvaluationContext{RecentViews: 500, RecentPurchases: 6},
			want:    1150,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "discount below low threshold",
			base:    1000,
			rule:    rule(),
			ec:      pricing.EvaluationContext{RecentViews: 50},
			want:    900,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "normal demand unchanged",
			base:    1000,
			rule:    rule(),
			ec:      pricing.EvaluationContext{RecentViews: 200, RecentPurchases: 3},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
		{
			name:    "score equal to high threshold unchanged",
			base:    1000,
			rule:    rule(),
			ec:      pricing.EvaluationContext{RecentPurchases: 10},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
	})
}

func TestCalculator_CompetitorBased(t *testing.T) {
	calc := pricing.NewCalculator(nil)
	sample := pricing.EvaluationContext{CompetitorPrices: []int64{950, 900, 1000}}

	runCalcCases(t, calc, []calcCase{
		{
			name:    "undercut lowest by 5%",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyUndercut, 5),
			ec:      sample,
			want:    855,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "match lowest",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyMatchLowest, 0),
			ec:      sample,
			want:    900,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "match average",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyMatchAverage, 0),
			ec:      sample,
			want:    950,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "premium above average",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyPremium, 10),
			ec:      sample,
			want:    1045,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "empty competitor list",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyUndercut, 5),
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
		{
			name:    "non-positive samples are ignored",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyMatchLowest, 0),
			ec:      pricing.EvaluationContext{CompetitorPrices: []int64{0, -10}},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
	})
}

func TestCalculator_Seasonal(t *testing.T) {
	calc := pricing.NewCalculator(nil)
	rule := func() *builder.PricingRuleBuilder {
		return builder.NewPricingRuleBuilder().AsSeasonal(map[string]any{"12": 15, "january": -20})
	}

	runCalcCases(t, calc, []calcCase{
		{
			name:    "december markup",
			base:    1000,
			rule:    rule(),
			want:    1150,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "january discount by month name",
			base:    1000,
			rule:    rule(),
			ec:      pricing.EvaluationContext{At: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
			want:    800,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "month without entry",
			base:    1000,
			rule:    rule(),
			ec:      pricing.EvaluationContext{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
			want:    1000,
			outcome: pricing.OutcomeUnchanged,
		},
	})
}

func TestCalculator_BundleAndVolume(t *testing.T) {
	calc := pricing.NewCalculator(nil)
	bundle := func() *builder.PricingRuleBuilder { return builder.NewPricingRuleBuilder().AsBundle(5, 10, 15) }
	volume := func() *builder.PricingRuleBuilder {
		return builder.NewPricingRuleBuilder().AsVolume([2]float64{100, 15}, [2]float64{10, 5}, [2]float64{50, 10})
	}

	runCalcCases(t, calc, []calcCase{
		{name: "bundle single unit", base: 1000, rule: bundle(), ec: pricing.EvaluationContext{Quantity: 1}, want: 1000, outcome: pricing.OutcomeUnchanged},
		{name: "bundle 2-4", base: 1000, rule: bundle(), ec: pricing.EvaluationContext{Quantity: 3}, want: 950, outcome: pricing.OutcomeAdjusted},
		{name: "bundle 5-9", base: 1000, rule: bundle(), ec: pricing.EvaluationContext{Quantity: 9}, want: 900, outcome: pricing.OutcomeAdjusted},
		{name: "bundle 10+", base: 1000, rule: bundle(), ec: pricing.EvaluationContext{Quantity: 10}, want: 850, outcome: pricing.OutcomeAdjusted},
		{name: "volume 60 takes the 50 tier", base: 1000, rule: volume(), ec: pricing.EvaluationContext{Quantity: 60}, want: 900, outcome: pricing.OutcomeAdjusted},
		{name: "volume exact tier boundary", base: 1000, rule: volume(), ec: pricing.EvaluationContext{Quantity: 100}, want: 850, outcome: pricing.OutcomeAdjusted},
		{name: "volume below every tier", base: 1000, rule: volume(), ec: pricing.EvaluationContext{Quantity: 5}, want: 1000, outcome: pricing.OutcomeUnchanged},
	})
}

func TestCalculator_AIOptimized(t *testing.T) {
	t.Run("uses the prediction", func(t *testing.T) {
		predictor := &stubPredictor{price: 1234}
		calc := pricing.NewCalculator(predictor)
		rule, err := builder.NewPricingRuleBuilder().AsAIOptimized("gbm-v2").BuildDomain()
		require.NoError(t, err)

		ec := pricing.EvaluationContext{At: noon, StockLevel: 3, Quantity: 2, CompetitorPrices: []int64{990}}
		q := calc.Calculate(context.Background(), 1000, rule, ec)

		assert.Equal(t, int64(1234), q.Price)
		assert.Equal(t, pricing.OutcomeAdjusted, q.Outcome)
		require.Len(t, predictor.calls, 1)

		want := pricing.PredictionInput{
			ProductID:        rule.ProductID().String(),
			Model:            "gbm-v2",
			BasePrice:        1000,
			At:               noon,
			StockLevel:       3,
			CompetitorPrices: []int64{990},
			Quantity:         2,
		}
		if diff := cmp.Diff(want, predictor.calls[0]); diff != "" {
			t.Errorf("prediction input mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("prediction is clamped to bounds", func(t *testing.T) {
		calc := pricing.NewCalculator(&stubPredictor{price: 5000})
		rule, err := builder.NewPricingRuleBuilder().AsAIOptimized("").
			WithBounds(nil, ptr.Of(int64(1500))).BuildDomain()
		require.NoError(t, err)

		q := calc.Calculate(context.Background(), 1000, rule, pricing.EvaluationContext{At: noon})
		assert.Equal(t, int64(1500), q.Price)
	})

	t.Run("failing predictor falls back to base price", func(t *testing.T) {
		cause := errors.New("connection refused")
		calc := pricing.NewCalculator(&stubPredictor{err: cause})
		rule, err := builder.NewPricingRuleBuilder().AsAIOptimized("").
			WithBounds(ptr.Of(int64(2000)), nil).BuildDomain()
		require.NoError(t, err)

		q := calc.Calculate(context.Background(), 1000, rule, pricing.EvaluationContext{At: noon})

		assert.Equal(t, int64(1000), q.Price)
		assert.Equal(t, pricing.OutcomeFallback, q.Outcome)
		assert.ErrorIs(t, q.Issue, pricing.ErrPredictorUnavailable)
		assert.ErrorIs(t, q.Issue, cause)
	})

	t.Run("no predictor configured", func(t *testing.T) {
		calc := pricing.NewCalculator(nil)
		rule, err := builder.NewPricingRuleBuilder().AsAIOptimized("").BuildDomain()
		require.NoError(t, err)

		q := calc.Calculate(context.Background(), 1000, rule, pricing.EvaluationContext{At: noon})

		assert.Equal(t, int64(1000), q.Price)
		assert.Equal(t, pricing.OutcomeFallback, q.Outcome)
		assert.ErrorIs(t, q.Issue, pricing.ErrPredictorUnavailable)
	})
}

func TestCalculator_FailClosed(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	t.Run("stored rule with broken configuration", func(t *testing.T) {
		rule := builder.NewPricingRuleBuilder().
			WithSettings(pricing.RuleTypeInventoryBased, map[string]any{"base_discount": "lots"}).
			WithBounds(ptr.Of(int64(5000)), nil).
			BuildStored()

		q := calc.Calculate(context.Background(), 1000, rule, pricing.EvaluationContext{At: noon, StockLevel: 1})

		assert.Equal(t, int64(1000), q.Price)
		assert.Equal(t, pricing.OutcomeFallback, q.Outcome)
		assert.ErrorIs(t, q.Issue, pricing.ErrInvalidConfiguration)
	})

	t.Run("fallback ignores the rule's bounds", func(t *testing.T) {
		rule, err := builder.NewPricingRuleBuilder().AsAIOptimized("").
			WithBounds(ptr.Of(int64(500)), ptr.Of(int64(900))).BuildDomain()
		require.NoError(t, err)

		q := calc.Calculate(context.Background(), 1000, rule, pricing.EvaluationContext{At: noon})

		assert.Equal(t, int64(1000), q.Price)
		assert.False(t, q.Changed())
		assert.Equal(t, pricing.OutcomeFallback, q.Outcome)
	})

	t.Run("stored rule with unknown type", func(t *testing.T) {
		rule := builder.NewPricingRuleBuilder().With(func(b *builder.PricingRuleBuilder) { b.Type = "legacy" }).BuildStored()

		q := calc.Calculate(context.Background(), 1000, rule, pricing.EvaluationContext{At: noon})

		assert.Equal(t, int64(1000), q.Price)
		assert.ErrorIs(t, q.Issue, pricing.ErrInvalidConfiguration)
	})

	t.Run("nil rule", func(t *testing.T) {
		q := calc.Calculate(context.Background(), 1000, nil, pricing.EvaluationContext{At: noon})

		assert.Equal(t, int64(1000), q.Price)
		assert.ErrorIs(t, q.Issue, pricing.ErrMissingRule)
	})

	t.Run("negative base price", func(t *testing.T) {
		rule, err := builder.NewPricingRuleBuilder().BuildDomain()
		require.NoError(t, err)

		q := calc.Calculate(context.Background(), -100, rule, pricing.EvaluationContext{At: noon})

		assert.Equal(t, int64(0), q.Price)
		assert.ErrorIs(t, q.Issue, pricing.ErrNegativeBasePrice)
	})
}

func TestCalculator_BoundsAndRounding(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	runCalcCases(t, calc, []calcCase{
		{
			name:    "min bound lifts a deep discount",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsInventory(10, 25).WithBounds(ptr.Of(int64(700)), nil),
			ec:      pricing.EvaluationContext{StockLevel: 5},
			want:    700,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "max bound caps a surge",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsDemand(100, 10, 15, 10).WithBounds(nil, ptr.Of(int64(1100))),
			ec:      pricing.EvaluationContext{RecentPurchases: 20},
			want:    1100,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "bounds apply even without an adjustment",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsVolume([2]float64{10, 5}).WithBounds(nil, ptr.Of(int64(900))),
			ec:      pricing.EvaluationContext{Quantity: 1},
			want:    900,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "full discount floors at zero",
			base:    1000,
			rule:    builder.NewPricingRuleBuilder().AsSeasonal(map[string]any{"december": -100}),
			want:    0,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "half rounds away from zero",
			base:    1001,
			rule:    builder.NewPricingRuleBuilder().AsBundle(50, 50, 50),
			ec:      pricing.EvaluationContext{Quantity: 2},
			want:    501,
			outcome: pricing.OutcomeAdjusted,
		},
		{
			name:    "fraction below half rounds down",
			base:    999,
			rule:    builder.NewPricingRuleBuilder().AsBundle(15, 15, 15),
			ec:      pricing.EvaluationContext{Quantity: 2},
			want:    849,
			outcome: pricing.OutcomeAdjusted,
		},
	})
}

func TestCalculator_Properties(t *testing.T) {
	calc := pricing.NewCalculator(&stubPredictor{price: -50})
	rng := rand.New(rand.NewSource(42))

	rules := []*builder.PricingRuleBuilder{
		builder.NewPricingRuleBuilder(),
		builder.NewPricingRuleBuilder().AsInventory(20, 30),
		builder.NewPricingRuleBuilder().AsDemand(50, 5, 40, 25),
		builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyPremium, 30),
		builder.NewPricingRuleBuilder().AsCompetitor(pricing.StrategyUndercut, 100),
		builder.NewPricingRuleBuilder().AsSeasonal(map[string]any{"12": 80}),
		builder.NewPricingRuleBuilder().AsBundle(10, 20, 30),
		builder.NewPricingRuleBuilder().AsVolume([2]float64{5, 5}, [2]float64{20, 60}),
		builder.NewPricingRuleBuilder().AsAIOptimized("m"),
	}

	for _, b := range rules {
		rule, err := b.BuildDomain()
		require.NoError(t, err)
		bounded, err := b.WithBounds(ptr.Of(int64(300)), ptr.Of(int64(1200))).BuildDomain()
		require.NoError(t, err)

		for i := 0; i < 200; i++ {
			base := rng.Int63n(5000)
			ec := pricing.EvaluationContext{
				At:               noon.Add(time.Duration(rng.Intn(24)) * time.Hour),
				StockLevel:       rng.Intn(40),
				RecentViews:      rng.Intn(2000),
				RecentPurchases:  rng.Intn(20),
				CompetitorPrices: []int64{rng.Int63n(3000), rng.Int63n(3000)},
				Quantity:         rng.Intn(30),
			}

			q := calc.Calculate(context.Background(), base, rule, ec)
			assert.GreaterOrEqual(t, q.Price, int64(0), "non-negative for %s", rule.Type())

			again := calc.Calculate(context.Background(), base, rule, ec)
			assert.True(t, cmp.Equal(q, again, cmpopts.EquateErrors()), "idempotent for %s", rule.Type())

			bq := calc.Calculate(context.Background(), base, bounded, ec)
			if bq.Outcome != pricing.OutcomeFallback {
				assert.GreaterOrEqual(t, bq.Price, int64(300), "min bound for %s", rule.Type())
				assert.LessOrEqual(t, bq.Price, int64(1200), "max bound for %s", rule.Type())
			}
		}
	}
}
