package queries

import (
	"context"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"

	"github.com/google/uuid"
)

type PricingRuleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PricingRuleView, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*PricingRuleView, error)
	ListByProductAndStatus(ctx context.Context, productID uuid.UUID, status string) ([]*PricingRuleView, error)
}

type PricingRuleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PricingRuleView, error)
	// ListByProduct returns every rule of the product; status narrows it when set.
	ListByProduct(ctx context.Context, productID uuid.UUID, status string) ([]*PricingRuleView, error)
}

type pricingRuleQueriesImpl struct {
	store PricingRuleReadStore
}

func NewPricingRuleQueries(store PricingRuleReadStore) PricingRuleQueries {
	return &pricingRuleQueriesImpl{store: store}
}

func (q *pricingRuleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PricingRuleView, error) {
	rule, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPricingRuleNotFound
		}
		return nil, err
	}
	return rule, nil
}

func (q *pricingRuleQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID, status string) ([]*PricingRuleView, error) {
	if status == "" {
		return q.store.ListByProduct(ctx, productID)
	}
	if !pricing.Status(status).IsValid() {
		return nil, ErrInvalidStatusFilter
	}
	return q.store.ListByProductAndStatus(ctx, productID, status)
}
