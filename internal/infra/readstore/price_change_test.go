//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/infra/readstore"
	"dynamic-pricing/internal/pkg/pgconv"
	readstoremock "dynamic-pricing/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceChangeReadStore_FindByProductFirstPage(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	ruleID := uuid.New()
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockPriceChangeReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewPriceChangeReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().ListPriceChangesFirstPage(ctx, mockDB, productID, int32(21)).Return([]query.PriceChange{
		{
			ID:            uuid.New(),
			ProductID:     productID,
			RuleID:        pgconv.UUIDToPgtype(ruleID),
			OldPrice:      1000,
			NewPrice:      800,
			PercentChange: pgconv.DecimalToNumeric(decimal.RequireFromString("-20")),
			Source:        "rule",
			CreatedAt:     pgconv.TimeToPgtype(at),
		},
	}, nil)

	views, err := store.FindByProductFirstPage(ctx, productID, 21)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "-20.00", views[0].PercentChange)
	assert.Equal(t, &ruleID, views[0].RuleID)
	assert.Nil(t, views[0].ActorID)
	assert.Equal(t, at, views[0].CreatedAt)
}

func TestPriceChangeReadStore_FindByProductKeyset(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	lastID := uuid.New()
	lastAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("passes keyset parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPriceChangeReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewPriceChangeReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListPriceChangesKeyset(ctx, mockDB, query.ListPriceChangesKeysetParams{
			ProductID: productID,
			CreatedAt: pgconv.TimeToPgtype(lastAt),
			ID:        lastID,
			Limit:     11,
		}).Return(nil, nil)

		views, err := store.FindByProductKeyset(ctx, productID, lastAt, lastID, 11)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("null percent is reported as a data failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPriceChangeReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewPriceChangeReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListPriceChangesKeyset(ctx, mockDB, gomock.Any()).Return([]query.PriceChange{
			{ID: uuid.New(), ProductID: productID, PercentChange: pgtype.Numeric{}},
		}, nil)

		views, err := store.FindByProductKeyset(ctx, productID, lastAt, lastID, 11)
		require.Error(t, err)
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
