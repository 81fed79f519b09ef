package commands

import (
	"context"
	"encoding/json"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/errs"
	"dynamic-pricing/internal/pkg/metrics"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApplyPriceRequest struct {
	ProductID uuid.UUID
	RuleID    *uuid.UUID
	Quantity  int
}

type SetManualPriceRequest struct {
	ProductID uuid.UUID
	Price     int64
	Reason    string
}

// ApplyPriceResult carries the evaluation and, when the current price moved,
// the recorded change. Change is nil for unchanged and fallback outcomes.
type ApplyPriceResult struct {
	Quote        pricing.Quote
	Change       *pricing.PriceChange
	CurrentPrice int64
}

type PriceCommands interface {
	ApplyRule(ctx context.Context, req ApplyPriceRequest) (*ApplyPriceResult, error)
	SetManualPrice(ctx context.Context, req SetManualPriceRequest, actorID uuid.UUID) (*pricing.PriceChange, error)
}

type priceUseCaseImpl struct {
	uow   shared.UnitOfWork
	calc  pricing.PriceCalculator
	clock clock.Clock
	topic EventTopic
}

func NewPriceUseCase(uow shared.UnitOfWork, calc pricing.PriceCalculator, clk clock.Clock, topic EventTopic) PriceCommands {
	return &priceUseCaseImpl{uow: uow, calc: calc, clock: clk, topic: topic}
}

// ApplyRule evaluates against the base price and persists only when the
// result differs from the current price. The product row lock serializes
// concurrent applies on one product.
func (uc *priceUseCaseImpl) ApplyRule(ctx context.Context, req ApplyPriceRequest) (*ApplyPriceResult, error) {
	quantity := req.Quantity
	switch {
	case quantity < 0:
		return nil, ErrInvalidQuantity
	case quantity == 0:
		quantity = 1
	}

	var result *ApplyPriceResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		product, err := reads.ProductForUpdate(ctx, req.ProductID)
		if err != nil {
			return mapNotFound(err, ErrProductNotFound)
		}
		// Read the clock under the row lock so timestamps follow commit order.
		now := uc.clock.Now()

		rule, err := uc.pickRule(ctx, reads, req, now)
		if err != nil {
			return err
		}

		signals, err := reads.Signals(ctx, product.ID, now)
		if err != nil {
			return err
		}

		quote := uc.calc.Calculate(ctx, product.BasePrice, rule, shared.EvaluationContext(product, signals, now, quantity))
		result = &ApplyPriceResult{Quote: quote, CurrentPrice: product.CurrentPrice}
		if quote.Outcome == pricing.OutcomeFallback || quote.Price == product.CurrentPrice {
			return nil
		}

		change, err := pricing.NewRuleDrivenChange(product.ID, quote, product.CurrentPrice, now)
		if err != nil {
			return err
		}
		if err := uc.record(ctx, tx, change, quote.RuleType); err != nil {
			return err
		}
		if err := tx.Products().UpdatePrices(ctx, tx.DB(), product.ID, product.BasePrice, quote.Price, now); err != nil {
			return err
		}
		result.Change = change
		result.CurrentPrice = quote.Price
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Change != nil {
		metrics.RecordPriceChange(string(result.Change.Source()))
	}
	return result, nil
}

func (uc *priceUseCaseImpl) pickRule(ctx context.Context, reads shared.CommandReads, req ApplyPriceRequest, now time.Time) (*pricing.Rule, error) {
	if req.RuleID != nil {
		rule, err := reads.RuleByID(ctx, *req.RuleID)
		if err != nil {
			return nil, mapNotFound(err, ErrPricingRuleNotFound)
		}
		if rule.ProductID() != req.ProductID {
			return nil, ErrRuleProductMismatch
		}
		if !rule.IsApplicableAt(now) {
			return nil, ErrRuleNotApplicable
		}
		return rule, nil
	}

	rules, err := reads.ActiveRules(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	rule, ok := pricing.SelectRule(rules, now)
	if !ok {
		return nil, ErrNoApplicableRule
	}
	return rule, nil
}

// SetManualPrice overrides both base and current price.
func (uc *priceUseCaseImpl) SetManualPrice(ctx context.Context, req SetManualPriceRequest, actorID uuid.UUID) (*pricing.PriceChange, error) {
	if req.Price < 0 {
		return nil, pricing.ErrNegativePrice
	}

	var change *pricing.PriceChange
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		change = nil

		product, err := tx.Reads().ProductForUpdate(ctx, req.ProductID)
		if err != nil {
			return mapNotFound(err, ErrProductNotFound)
		}
		now := uc.clock.Now()
		if product.CurrentPrice == req.Price {
			if product.BasePrice == req.Price {
				return pricing.ErrNoPriceChange
			}
			return tx.Products().UpdatePrices(ctx, tx.DB(), product.ID, req.Price, req.Price, now)
		}

		c, err := pricing.NewManualChange(product.ID, product.CurrentPrice, req.Price, req.Reason, actorID, now)
		if err != nil {
			return err
		}
		if err := uc.record(ctx, tx, c, ""); err != nil {
			return err
		}
		if err := tx.Products().UpdatePrices(ctx, tx.DB(), product.ID, req.Price, req.Price, now); err != nil {
			return err
		}
		change = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if change != nil {
		metrics.RecordPriceChange(string(change.Source()))
	}
	return change, nil
}

// record appends the change and its outbox event in the caller's transaction.
func (uc *priceUseCaseImpl) record(ctx context.Context, tx shared.Tx, change *pricing.PriceChange, ruleType pricing.RuleType) error {
	if err := tx.PriceChanges().Create(ctx, tx.DB(), change); err != nil {
		return err
	}
	payload, err := json.Marshal(newPriceChangedEvent(change, ruleType))
	if err != nil {
		return errs.Wrap(err, "failed to encode price changed event")
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxMessage{
		Topic:     string(uc.topic),
		Key:       change.ProductID().String(),
		Payload:   payload,
		CreatedAt: change.CreatedAt(),
	})
}
