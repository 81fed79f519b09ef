package commands

import (
	"context"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/errs"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePricingRuleRequest struct {
	ProductID     uuid.UUID
	Name          string
	Type          string
	Priority      string
	MinPrice      *int64
	MaxPrice      *int64
	StartsAt      *time.Time
	EndsAt        *time.Time
	Configuration map[string]any
	Activate      bool
}

// UpdatePricingRuleRequest replaces bounds and window as a whole; nil
// clears them. Name, Priority and Configuration are left alone when nil.
type UpdatePricingRuleRequest struct {
	Name          *string
	Priority      *string
	MinPrice      *int64
	MaxPrice      *int64
	StartsAt      *time.Time
	EndsAt        *time.Time
	Configuration map[string]any
}

type CreatePricingRuleResult struct {
	RuleID uuid.UUID
	Status pricing.Status
}

type PricingRuleCommands interface {
	Create(ctx context.Context, req CreatePricingRuleRequest, actorID uuid.UUID) (*CreatePricingRuleResult, error)
	Update(ctx context.Context, ruleID uuid.UUID, req UpdatePricingRuleRequest) error
	ChangeStatus(ctx context.Context, ruleID uuid.UUID, status string) error
	// ExpireDue moves at most limit live rules past their end date to expired.
	ExpireDue(ctx context.Context, limit int) (int, error)
}

type pricingRuleUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.RuleCache
	clock clock.Clock
}

func NewPricingRuleUseCase(uow shared.UnitOfWork, cache shared.RuleCache, clk clock.Clock) PricingRuleCommands {
	return &pricingRuleUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *pricingRuleUseCaseImpl) Create(ctx context.Context, req CreatePricingRuleRequest, actorID uuid.UUID) (*CreatePricingRuleResult, error) {
	status := pricing.StatusDraft
	if req.Activate {
		status = pricing.StatusActive
	}

	rule, err := pricing.NewRule(pricing.RuleParams{
		ProductID: req.ProductID,
		Name:      req.Name,
		Type:      req.Type,
		Status:    status.String(),
		Priority:  req.Priority,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Settings:  req.Configuration,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, req.ProductID); err != nil {
			return mapNotFound(err, ErrProductNotFound)
		}
		var createdBy *uuid.UUID
		if actorID != uuid.Nil {
			createdBy = &actorID
		}
		return tx.Rules().Create(ctx, tx.DB(), rule, createdBy)
	})
	if err != nil {
		return nil, err
	}

	if rule.Status() == pricing.StatusActive {
		shared.InvalidateRules(ctx, uc.cache, rule.ProductID())
	}
	return &CreatePricingRuleResult{RuleID: rule.ID(), Status: rule.Status()}, nil
}

func (uc *pricingRuleUseCaseImpl) Update(ctx context.Context, ruleID uuid.UUID, req UpdatePricingRuleRequest) error {
	var productID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().RuleForUpdate(ctx, ruleID)
		if err != nil {
			return mapNotFound(err, ErrPricingRuleNotFound)
		}
		var settings pricing.Settings
		if req.Configuration != nil {
			settings = req.Configuration
		}
		next, err := current.Apply(pricing.RuleUpdate{
			Name:     req.Name,
			Priority: req.Priority,
			MinPrice: req.MinPrice,
			MaxPrice: req.MaxPrice,
			StartsAt: req.StartsAt,
			EndsAt:   req.EndsAt,
			Settings: settings,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		productID = next.ProductID()
		return tx.Rules().Update(ctx, tx.DB(), next)
	})
	if err != nil {
		return err
	}

	shared.InvalidateRules(ctx, uc.cache, productID)
	return nil
}

func (uc *pricingRuleUseCaseImpl) ChangeStatus(ctx context.Context, ruleID uuid.UUID, status string) error {
	next, err := pricing.NewStatus(status)
	if err != nil {
		return err
	}

	var productID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rule, err := tx.Reads().RuleForUpdate(ctx, ruleID)
		if err != nil {
			return mapNotFound(err, ErrPricingRuleNotFound)
		}
		if err := rule.TransitionTo(next, uc.clock.Now()); err != nil {
			return err
		}
		productID = rule.ProductID()
		return tx.Rules().Update(ctx, tx.DB(), rule)
	})
	if err != nil {
		return err
	}

	shared.InvalidateRules(ctx, uc.cache, productID)
	return nil
}

func (uc *pricingRuleUseCaseImpl) ExpireDue(ctx context.Context, limit int) (int, error) {
	now := uc.clock.Now()
	var touched []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		touched = touched[:0]
		rules, err := tx.Reads().ExpirableRules(ctx, now, limit)
		if err != nil {
			return err
		}
		for _, rule := range rules {
			if !rule.ShouldExpireAt(now) {
				continue
			}
			if err := rule.TransitionTo(pricing.StatusExpired, now); err != nil {
				return errs.Wrapf(err, "expire rule %s", rule.ID())
			}
			if err := tx.Rules().Update(ctx, tx.DB(), rule); err != nil {
				return err
			}
			touched = append(touched, rule.ProductID())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	shared.InvalidateRules(ctx, uc.cache, uniqueIDs(touched)...)
	return len(touched), nil
}

func mapNotFound(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, target)
	}
	return err
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
