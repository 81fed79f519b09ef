//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/ptr"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/shared"
	"dynamic-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const priceTopic = commands.EventTopic("price.changed")

var applyAt = time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC)

func product(id uuid.UUID, base, current int64, stock int) *shared.ProductSnapshot {
	return &shared.ProductSnapshot{ID: id, SKU: "SKU-" + id.String()[:4], Name: "Widget", BasePrice: base, CurrentPrice: current, StockLevel: stock}
}

func TestPriceCommands_ApplyRule(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("selected rule adjusts the price and records the change", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		low := builder.NewPricingRuleBuilder().WithProductID(productID).WithPriority(pricing.PriorityLow).AsBundle(5, 10, 15).BuildStored()
		clearance := builder.NewPricingRuleBuilder().WithProductID(productID).WithPriority(pricing.PriorityHigh).AsInventory(10, 25).BuildStored()

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 1000, 5), nil)
		f.reads.EXPECT().ActiveRules(gomock.Any(), productID).Return([]*pricing.Rule{low, clearance}, nil)
		f.reads.EXPECT().Signals(gomock.Any(), productID, applyAt).Return(&shared.SignalSnapshot{}, nil)

		var recorded *pricing.PriceChange
		f.changes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *pricing.PriceChange) error {
				recorded = c
				return nil
			})
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, msg shared.OutboxMessage) error {
				assert.Equal(t, "price.changed", msg.Topic)
				assert.Equal(t, productID.String(), msg.Key)

				var evt commands.PriceChangedEvent
				require.NoError(t, json.Unmarshal(msg.Payload, &evt))
				assert.Equal(t, int64(1000), evt.OldPrice)
				assert.Equal(t, int64(650), evt.NewPrice)
				assert.Equal(t, "-35.00", evt.PercentChange)
				assert.Equal(t, "inventory_based", evt.RuleType)
				assert.Equal(t, "rule", evt.Source)
				return nil
			})
		f.products.EXPECT().UpdatePrices(gomock.Any(), gomock.Any(), productID, int64(1000), int64(650), applyAt).Return(nil)

		result, err := uc.ApplyRule(ctx, commands.ApplyPriceRequest{ProductID: productID})

		require.NoError(t, err)
		assert.Equal(t, pricing.OutcomeAdjusted, result.Quote.Outcome)
		assert.Equal(t, clearance.ID(), result.Quote.RuleID)
		assert.Equal(t, int64(650), result.CurrentPrice)
		require.NotNil(t, result.Change)
		assert.Same(t, recorded, result.Change)
		assert.Equal(t, clearance.ID(), *result.Change.RuleID())
	})

	t.Run("timestamps are taken after the row lock is held", func(t *testing.T) {
		f := newTxFixture(t)
		clk := clock.NewMockClock(applyAt.Add(-time.Minute))
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clk, priceTopic)

		rule := builder.NewPricingRuleBuilder().WithProductID(productID).AsInventory(10, 25).BuildStored()

		// another transaction held the lock while the clock moved on
		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).
			DoAndReturn(func(context.Context, uuid.UUID) (*shared.ProductSnapshot, error) {
				clk.Set(applyAt)
				return product(productID, 1000, 1000, 5), nil
			})
		f.reads.EXPECT().ActiveRules(gomock.Any(), productID).Return([]*pricing.Rule{rule}, nil)
		f.reads.EXPECT().Signals(gomock.Any(), productID, applyAt).Return(&shared.SignalSnapshot{}, nil)
		f.changes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, msg shared.OutboxMessage) error {
				assert.Equal(t, applyAt, msg.CreatedAt)
				return nil
			})
		f.products.EXPECT().UpdatePrices(gomock.Any(), gomock.Any(), productID, int64(1000), int64(650), applyAt).Return(nil)

		result, err := uc.ApplyRule(ctx, commands.ApplyPriceRequest{ProductID: productID})

		require.NoError(t, err)
		require.NotNil(t, result.Change)
		assert.Equal(t, applyAt, result.Change.CreatedAt())
	})

	t.Run("price equal to current is not persisted", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		rule := builder.NewPricingRuleBuilder().WithProductID(productID).AsInventory(10, 25).BuildStored()

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 650, 5), nil)
		f.reads.EXPECT().ActiveRules(gomock.Any(), productID).Return([]*pricing.Rule{rule}, nil)
		f.reads.EXPECT().Signals(gomock.Any(), productID, applyAt).Return(&shared.SignalSnapshot{}, nil)

		result, err := uc.ApplyRule(ctx, commands.ApplyPriceRequest{ProductID: productID})

		require.NoError(t, err)
		assert.Nil(t, result.Change)
		assert.Equal(t, int64(650), result.CurrentPrice)
	})

	t.Run("fallback leaves the product untouched", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		rule := builder.NewPricingRuleBuilder().WithProductID(productID).AsAIOptimized("gbm").BuildStored()

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 900, 5), nil)
		f.reads.EXPECT().ActiveRules(gomock.Any(), productID).Return([]*pricing.Rule{rule}, nil)
		f.reads.EXPECT().Signals(gomock.Any(), productID, applyAt).Return(&shared.SignalSnapshot{}, nil)

		result, err := uc.ApplyRule(ctx, commands.ApplyPriceRequest{ProductID: productID})

		require.NoError(t, err)
		assert.Equal(t, pricing.OutcomeFallback, result.Quote.Outcome)
		assert.ErrorIs(t, result.Quote.Issue, pricing.ErrPredictorUnavailable)
		assert.Nil(t, result.Change)
		assert.Equal(t, int64(900), result.CurrentPrice)
	})

	t.Run("explicit rule for a volume order", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		rule := builder.NewPricingRuleBuilder().WithProductID(productID).
			AsVolume([2]float64{10, 5}, [2]float64{50, 10}, [2]float64{100, 15}).BuildStored()
		ruleID := rule.ID()

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 1000, 100), nil)
		f.reads.EXPECT().RuleByID(gomock.Any(), ruleID).Return(rule, nil)
		f.reads.EXPECT().Signals(gomock.Any(), productID, applyAt).Return(&shared.SignalSnapshot{}, nil)
		f.changes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.products.EXPECT().UpdatePrices(gomock.Any(), gomock.Any(), productID, int64(1000), int64(900), applyAt).Return(nil)

		result, err := uc.ApplyRule(ctx, commands.ApplyPriceRequest{ProductID: productID, RuleID: &ruleID, Quantity: 60})

		require.NoError(t, err)
		assert.Equal(t, int64(900), result.Quote.Price)
	})

	errorCases := []struct {
		name    string
		req     func(ruleID uuid.UUID) commands.ApplyPriceRequest
		setup   func(f *txFixture, rule *pricing.Rule)
		wantErr error
	}{
		{
			name: "product not found",
			req:  func(uuid.UUID) commands.ApplyPriceRequest { return commands.ApplyPriceRequest{ProductID: productID} },
			setup: func(f *txFixture, _ *pricing.Rule) {
				f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).
					Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))
			},
			wantErr: commands.ErrProductNotFound,
		},
		{
			name: "no applicable rule",
			req:  func(uuid.UUID) commands.ApplyPriceRequest { return commands.ApplyPriceRequest{ProductID: productID} },
			setup: func(f *txFixture, _ *pricing.Rule) {
				f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 1000, 5), nil)
				f.reads.EXPECT().ActiveRules(gomock.Any(), productID).Return(nil, nil)
			},
			wantErr: commands.ErrNoApplicableRule,
		},
		{
			name: "explicit rule of another product",
			req: func(ruleID uuid.UUID) commands.ApplyPriceRequest {
				return commands.ApplyPriceRequest{ProductID: uuid.New(), RuleID: &ruleID}
			},
			setup: func(f *txFixture, rule *pricing.Rule) {
				f.reads.EXPECT().ProductForUpdate(gomock.Any(), gomock.Any()).Return(product(uuid.New(), 1000, 1000, 5), nil)
				f.reads.EXPECT().RuleByID(gomock.Any(), rule.ID()).Return(rule, nil)
			},
			wantErr: commands.ErrRuleProductMismatch,
		},
		{
			name: "explicit rule that is paused",
			req: func(ruleID uuid.UUID) commands.ApplyPriceRequest {
				return commands.ApplyPriceRequest{ProductID: productID, RuleID: &ruleID}
			},
			setup: func(f *txFixture, rule *pricing.Rule) {
				paused := builder.NewPricingRuleBuilder().WithID(rule.ID()).WithProductID(productID).WithStatus(pricing.StatusPaused).BuildStored()
				f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 1000, 5), nil)
				f.reads.EXPECT().RuleByID(gomock.Any(), rule.ID()).Return(paused, nil)
			},
			wantErr: commands.ErrRuleNotApplicable,
		},
		{
			name:    "negative quantity",
			req:     func(uuid.UUID) commands.ApplyPriceRequest { return commands.ApplyPriceRequest{ProductID: productID, Quantity: -1} },
			setup:   func(*txFixture, *pricing.Rule) {},
			wantErr: commands.ErrInvalidQuantity,
		},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTxFixture(t)
			uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)
			rule := builder.NewPricingRuleBuilder().WithProductID(productID).BuildStored()
			tc.setup(f, rule)

			result, err := uc.ApplyRule(ctx, tc.req(rule.ID()))

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestPriceCommands_SetManualPrice(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	actorID := uuid.New()

	t.Run("records a manual change and resets base price", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 800, 5), nil)
		f.changes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.products.EXPECT().UpdatePrices(gomock.Any(), gomock.Any(), productID, int64(1200), int64(1200), applyAt).Return(nil)

		change, err := uc.SetManualPrice(ctx, commands.SetManualPriceRequest{ProductID: productID, Price: 1200, Reason: "cost increase"}, actorID)

		require.NoError(t, err)
		require.NotNil(t, change)
		assert.Equal(t, int64(800), change.OldPrice())
		assert.Equal(t, int64(1200), change.NewPrice())
		assert.Equal(t, pricing.SourceManual, change.Source())
		assert.Equal(t, ptr.Of(actorID), change.ActorID())
		assert.Equal(t, "cost increase", change.Reason())
	})

	t.Run("change is stamped after the row lock is held", func(t *testing.T) {
		f := newTxFixture(t)
		clk := clock.NewMockClock(applyAt.Add(-time.Minute))
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clk, priceTopic)

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).
			DoAndReturn(func(context.Context, uuid.UUID) (*shared.ProductSnapshot, error) {
				clk.Set(applyAt)
				return product(productID, 1000, 800, 5), nil
			})
		f.changes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.products.EXPECT().UpdatePrices(gomock.Any(), gomock.Any(), productID, int64(1200), int64(1200), applyAt).Return(nil)

		change, err := uc.SetManualPrice(ctx, commands.SetManualPriceRequest{ProductID: productID, Price: 1200}, actorID)

		require.NoError(t, err)
		assert.Equal(t, applyAt, change.CreatedAt())
	})

	t.Run("current already matches: base realigned without a change", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 1000, 800, 5), nil)
		f.products.EXPECT().UpdatePrices(gomock.Any(), gomock.Any(), productID, int64(800), int64(800), applyAt).Return(nil)

		change, err := uc.SetManualPrice(ctx, commands.SetManualPriceRequest{ProductID: productID, Price: 800}, actorID)

		require.NoError(t, err)
		assert.Nil(t, change)
	})

	t.Run("identical prices", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		f.reads.EXPECT().ProductForUpdate(gomock.Any(), productID).Return(product(productID, 800, 800, 5), nil)

		_, err := uc.SetManualPrice(ctx, commands.SetManualPriceRequest{ProductID: productID, Price: 800}, actorID)

		assert.ErrorIs(t, err, pricing.ErrNoPriceChange)
	})

	t.Run("negative price", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewPriceUseCase(f.uow, pricing.NewCalculator(nil), clock.NewMockClock(applyAt), priceTopic)

		_, err := uc.SetManualPrice(ctx, commands.SetManualPriceRequest{ProductID: productID, Price: -1}, actorID)

		assert.ErrorIs(t, err, pricing.ErrNegativePrice)
	})
}
