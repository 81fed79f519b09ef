package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra/db"
	"dynamic-pricing/internal/infra/query"
	"dynamic-pricing/internal/infra/readstore"
	"dynamic-pricing/internal/infra/repository"
	"dynamic-pricing/internal/pkg/errs"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Price writes lock the product row, so ReadCommitted is enough to
// serialize them.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Rollback is explicit per attempt; no defer inside the retry loop.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := newPgTx(u.q, pgxTx)

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if !shouldRetry(err, attempt, maxRetries) {
			slog.ErrorContext(ctx, "transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	q    *query.Queries
	dbtx db.DBTX

	// Lazy-initialized repositories
	ruleRepo        shared.PricingRuleRepository
	productRepo     shared.ProductRepository
	priceChangeRepo shared.PriceChangeRepository
	signalRepo      shared.SignalRepository
	outboxRepo      shared.OutboxRepository
	reads           shared.CommandReads
}

func newPgTx(q *query.Queries, dbtx db.DBTX) *pgTx {
	return &pgTx{q: q, dbtx: dbtx}
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Rules() shared.PricingRuleRepository {
	if t.ruleRepo == nil {
		t.ruleRepo = repository.NewPricingRuleRepository(t.q, t.dbtx)
	}
	return t.ruleRepo
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.q, t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) PriceChanges() shared.PriceChangeRepository {
	if t.priceChangeRepo == nil {
		t.priceChangeRepo = repository.NewPriceChangeRepository(t.q, t.dbtx)
	}
	return t.priceChangeRepo
}

func (t *pgTx) Signals() shared.SignalRepository {
	if t.signalRepo == nil {
		t.signalRepo = repository.NewSignalRepository(t.q, t.dbtx)
	}
	return t.signalRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = newCommandReads(t.q, t.dbtx)
	}
	return t.reads
}

type commandReads struct {
	rules    *repository.PricingRuleRepository
	products *readstore.ProductReadStore
	signals  *readstore.SignalReadStore
}

func newCommandReads(q *query.Queries, dbtx db.DBTX) *commandReads {
	return &commandReads{
		rules:    repository.NewPricingRuleRepository(q, dbtx),
		products: readstore.NewProductReadStore(q, dbtx),
		signals:  readstore.NewSignalReadStore(q, dbtx),
	}
}

func (r *commandReads) RuleByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	return r.rules.FindByID(ctx, id)
}

func (r *commandReads) RuleForUpdate(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	return r.rules.FindForUpdate(ctx, id)
}

func (r *commandReads) ActiveRules(ctx context.Context, productID uuid.UUID) ([]*pricing.Rule, error) {
	return r.rules.ListActive(ctx, productID)
}

func (r *commandReads) ExpirableRules(ctx context.Context, now time.Time, limit int) ([]*pricing.Rule, error) {
	return r.rules.ListExpirable(ctx, now, limit)
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	p, err := r.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productSnapshot(p.ID, p.SKU, p.Name, p.BasePrice, p.CurrentPrice, p.StockLevel), nil
}

func (r *commandReads) ProductForUpdate(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	p, err := r.products.FindForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	return productSnapshot(p.ID, p.SKU, p.Name, p.BasePrice, p.CurrentPrice, p.StockLevel), nil
}

func (r *commandReads) Signals(ctx context.Context, productID uuid.UUID, now time.Time) (*shared.SignalSnapshot, error) {
	return r.signals.Snapshot(ctx, productID, now)
}

func productSnapshot(id uuid.UUID, sku, name string, base, current int64, stock int32) *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:           id,
		SKU:          sku,
		Name:         name,
		BasePrice:    base,
		CurrentPrice: current,
		StockLevel:   int(stock),
	}
}
