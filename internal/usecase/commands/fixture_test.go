//go:build unit

package commands_test

import (
	"context"
	"testing"

	"dynamic-pricing/internal/usecase/shared"
	sharedmock "dynamic-pricing/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txFixture runs Within callbacks against mocked repositories.
type txFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	rules    *sharedmock.MockPricingRuleRepository
	products *sharedmock.MockProductRepository
	changes  *sharedmock.MockPriceChangeRepository
	signals  *sharedmock.MockSignalRepository
	outbox   *sharedmock.MockOutboxRepository
	cache    *sharedmock.MockRuleCache
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &txFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		rules:    sharedmock.NewMockPricingRuleRepository(ctrl),
		products: sharedmock.NewMockProductRepository(ctrl),
		changes:  sharedmock.NewMockPriceChangeRepository(ctrl),
		signals:  sharedmock.NewMockSignalRepository(ctrl),
		outbox:   sharedmock.NewMockOutboxRepository(ctrl),
		cache:    sharedmock.NewMockRuleCache(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Rules().Return(f.rules).AnyTimes()
	f.tx.EXPECT().Products().Return(f.products).AnyTimes()
	f.tx.EXPECT().PriceChanges().Return(f.changes).AnyTimes()
	f.tx.EXPECT().Signals().Return(f.signals).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	return f
}
