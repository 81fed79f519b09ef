package commands

import (
	"context"
	"math"
	"strings"

	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	maxCompetitorName = 100
	maxEventQuantity  = math.MaxInt32
)

type RecordEventRequest struct {
	ProductID uuid.UUID
	Kind      string
	Quantity  int
}

type RecordCompetitorPriceRequest struct {
	ProductID  uuid.UUID
	Competitor string
	Price      int64
}

// SignalCommands ingests the market signals rules are evaluated against.
type SignalCommands interface {
	RecordEvent(ctx context.Context, req RecordEventRequest) error
	RecordCompetitorPrice(ctx context.Context, req RecordCompetitorPriceRequest) error
}

type signalUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSignalUseCase(uow shared.UnitOfWork, clk clock.Clock) SignalCommands {
	return &signalUseCaseImpl{uow: uow, clock: clk}
}

func (uc *signalUseCaseImpl) RecordEvent(ctx context.Context, req RecordEventRequest) error {
	kind := shared.EventKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !kind.IsValid() {
		return ErrInvalidEventKind
	}
	quantity := req.Quantity
	switch {
	case quantity < 0, quantity > maxEventQuantity:
		return ErrInvalidQuantity
	case quantity == 0:
		quantity = 1
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, req.ProductID); err != nil {
			return mapNotFound(err, ErrProductNotFound)
		}
		return tx.Signals().RecordEvent(ctx, tx.DB(), req.ProductID, kind, quantity, uc.clock.Now())
	})
}

func (uc *signalUseCaseImpl) RecordCompetitorPrice(ctx context.Context, req RecordCompetitorPriceRequest) error {
	competitor := strings.TrimSpace(req.Competitor)
	if competitor == "" || len(competitor) > maxCompetitorName {
		return ErrInvalidCompetitor
	}
	if req.Price <= 0 {
		return ErrInvalidObservedPrice
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, req.ProductID); err != nil {
			return mapNotFound(err, ErrProductNotFound)
		}
		return tx.Signals().RecordCompetitorPrice(ctx, tx.DB(), req.ProductID, competitor, req.Price, uc.clock.Now())
	})
}
