//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/infra/repository"
	"dynamic-pricing/internal/pkg/pgconv"
	"dynamic-pricing/internal/pkg/ptr"
	"dynamic-pricing/tests/common/builder"
	repositorymock "dynamic-pricing/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Pricing Rule Tests
// =============================================================================

func TestPricingRuleRepository_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	testCases := []struct {
		name       string
		createdBy  *uuid.UUID
		setupMock  func(*repositorymock.MockPricingRuleQueries, *pricing.Rule, query.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:      "success: rule persisted with its configuration",
			createdBy: &actorID,
			setupMock: func(mock *repositorymock.MockPricingRuleQueries, rule *pricing.Rule, tx query.DBTX) {
				mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreatePricingRuleParams) error {
						assert.Equal(t, rule.ID(), arg.ID)
						assert.Equal(t, "time_based", arg.RuleType)
						assert.Equal(t, pgconv.UUIDPtrToPgtype(&actorID), arg.CreatedBy)

						var cfg map[string]any
						require.NoError(t, json.Unmarshal(arg.Configuration, &cfg))
						assert.Contains(t, cfg, "happy_hour_discount")
						return nil
					})
			},
		},
		{
			name: "error: product does not exist",
			setupMock: func(mock *repositorymock.MockPricingRuleQueries, rule *pricing.Rule, tx query.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).Return(fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockPricingRuleQueries, rule *pricing.Rule, tx query.DBTX) {
				mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPricingRuleQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPricingRuleRepository(mockQueries, mockDB)

			rule, err := builder.NewPricingRuleBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, rule, mockDB)

			actualError := repo.Create(ctx, mockDB, rule, tc.createdBy)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Update Pricing Rule Tests
// =============================================================================

func TestPricingRuleRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockPricingRuleQueries, query.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: rule updated",
			setupMock: func(mock *repositorymock.MockPricingRuleQueries, tx query.DBTX) {
				mock.EXPECT().UpdatePricingRule(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: rule not found",
			setupMock: func(mock *repositorymock.MockPricingRuleQueries, tx query.DBTX) {
				mock.EXPECT().UpdatePricingRule(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: check constraint violated",
			setupMock: func(mock *repositorymock.MockPricingRuleQueries, tx query.DBTX) {
				chk := &pgconn.PgError{Code: "23514", Message: "violates check constraint"}
				mock.EXPECT().UpdatePricingRule(ctx, tx, gomock.Any()).Return(int64(0), chk)
			},
			expectKind: infra.KindConstraintViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPricingRuleQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPricingRuleRepository(mockQueries, mockDB)

			rule, err := builder.NewPricingRuleBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Update(ctx, mockDB, rule)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Read Pricing Rule Tests
// =============================================================================

func TestPricingRuleRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	ruleID := uuid.New()
	productID := uuid.New()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: row mapped to domain rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPricingRuleQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPricingRuleRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetPricingRule(ctx, mockDB, ruleID).Return(query.PricingRule{
			ID:            ruleID,
			ProductID:     productID,
			Name:          "Clearance",
			RuleType:      "inventory_based",
			Status:        "active",
			Priority:      "high",
			MinPrice:      pgconv.Int64PtrToPgtype(ptr.Of(int64(500))),
			Configuration: []byte(`{"low_stock_threshold": 10, "base_discount": 25}`),
			CreatedAt:     pgconv.TimeToPgtype(now),
			UpdatedAt:     pgconv.TimeToPgtype(now),
		}, nil)

		rule, err := repo.FindByID(ctx, ruleID)

		require.NoError(t, err)
		assert.Equal(t, ruleID, rule.ID())
		assert.Equal(t, productID, rule.ProductID())
		assert.Equal(t, pricing.RuleTypeInventoryBased, rule.Type())
		assert.Equal(t, pricing.PriorityHigh, rule.Priority())
		assert.Equal(t, int64(500), *rule.Bounds().Min())
		assert.Nil(t, rule.Bounds().Max())

		cfg, err := rule.Config()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.(pricing.InventoryConfig).LowStockThreshold)
	})

	t.Run("error: rule not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPricingRuleQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPricingRuleRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetPricingRule(ctx, mockDB, ruleID).Return(query.PricingRule{}, pgx.ErrNoRows)

		rule, err := repo.FindByID(ctx, ruleID)

		require.Error(t, err)
		assert.Nil(t, rule)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt configuration surfaces at evaluation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPricingRuleQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPricingRuleRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetPricingRuleForUpdate(ctx, mockDB, ruleID).Return(query.PricingRule{
			ID:            ruleID,
			ProductID:     productID,
			Name:          "Broken",
			RuleType:      "volume",
			Status:        "active",
			Priority:      "low",
			Configuration: []byte(`[1, 2, 3]`),
		}, nil)

		rule, err := repo.FindForUpdate(ctx, ruleID)
		require.NoError(t, err)

		q := pricing.NewCalculator(nil).Calculate(ctx, 1000, rule, pricing.EvaluationContext{At: now, Quantity: 100})
		assert.Equal(t, pricing.OutcomeFallback, q.Outcome)
		assert.Equal(t, int64(1000), q.Price)
	})
}

func TestPricingRuleRepository_ListActive(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockPricingRuleQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPricingRuleRepository(mockQueries, mockDB)

	mockQueries.EXPECT().
		ListPricingRulesByProductAndStatus(ctx, mockDB, productID, "active").
		Return([]query.PricingRule{
			{ID: uuid.New(), ProductID: productID, RuleType: "bundle", Status: "active", Priority: "low", Configuration: []byte(`{}`)},
			{ID: uuid.New(), ProductID: productID, RuleType: "volume", Status: "active", Priority: "high", Configuration: []byte(`{}`)},
		}, nil)

	rules, err := repo.ListActive(ctx, productID)

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, pricing.RuleTypeBundle, rules[0].Type())
	assert.Equal(t, pricing.RuleTypeVolume, rules[1].Type())
}

func TestPricingRuleRepository_ListExpirable(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockPricingRuleQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPricingRuleRepository(mockQueries, mockDB)

	mockQueries.EXPECT().
		ListExpirablePricingRules(ctx, mockDB, pgconv.TimeToPgtype(now), int32(50)).
		Return(nil, errors.New("connection reset"))

	rules, err := repo.ListExpirable(ctx, now, 50)

	require.Error(t, err)
	assert.Nil(t, rules)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
