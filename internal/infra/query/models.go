package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PricingRule struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Name          string
	RuleType      string
	Status        string
	Priority      string
	MinPrice      pgtype.Int8
	MaxPrice      pgtype.Int8
	StartsAt      pgtype.Timestamptz
	EndsAt        pgtype.Timestamptz
	Configuration []byte
	CreatedBy     pgtype.UUID
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Product struct {
	ID           uuid.UUID
	Sku          string
	Name         string
	BasePrice    int64
	CurrentPrice int64
	StockLevel   int32
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type PriceChange struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	RuleID        pgtype.UUID
	OldPrice      int64
	NewPrice      int64
	PercentChange pgtype.Numeric
	Source        string
	Reason        string
	ActorID       pgtype.UUID
	CreatedAt     pgtype.Timestamptz
}

type OutboxEvent struct {
	ID        uuid.UUID
	Topic     string
	EventKey  string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	SentAt    pgtype.Timestamptz
}
