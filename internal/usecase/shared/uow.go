package shared

import (
	"context"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rules() PricingRuleRepository
	Products() ProductRepository
	PriceChanges() PriceChangeRepository
	Signals() SignalRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads serves the lookups a command needs before it writes. Inside a
// Tx the *ForUpdate variants take a row lock until commit.
type CommandReads interface {
	RuleByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error)
	RuleForUpdate(ctx context.Context, id uuid.UUID) (*pricing.Rule, error)
	ActiveRules(ctx context.Context, productID uuid.UUID) ([]*pricing.Rule, error)
	ExpirableRules(ctx context.Context, now time.Time, limit int) ([]*pricing.Rule, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	ProductForUpdate(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	Signals(ctx context.Context, productID uuid.UUID, now time.Time) (*SignalSnapshot, error)
}

type PricingRuleRepository interface {
	Create(ctx context.Context, tx db.DBTX, rule *pricing.Rule, createdBy *uuid.UUID) error
	Update(ctx context.Context, tx db.DBTX, rule *pricing.Rule) error
}

type ProductRepository interface {
	UpdatePrices(ctx context.Context, tx db.DBTX, productID uuid.UUID, basePrice, currentPrice int64, at time.Time) error
}

type PriceChangeRepository interface {
	Create(ctx context.Context, tx db.DBTX, change *pricing.PriceChange) error
}

type SignalRepository interface {
	RecordEvent(ctx context.Context, tx db.DBTX, productID uuid.UUID, kind EventKind, quantity int, at time.Time) error
	RecordCompetitorPrice(ctx context.Context, tx db.DBTX, productID uuid.UUID, competitor string, price int64, at time.Time) error
}

type OutboxRepository interface {
	LockRelay(ctx context.Context, tx db.DBTX) (bool, error)
	Enqueue(ctx context.Context, tx db.DBTX, msg OutboxMessage) error
	Pending(ctx context.Context, tx db.DBTX, limit int) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, reason string) error
}
