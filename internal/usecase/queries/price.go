package queries

import (
	"context"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/infra"
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

// OutcomeNoRule is reported when the product has no applicable rule.
const OutcomeNoRule = "no_rule"

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type PriceChangeReadStore interface {
	FindByProductFirstPage(ctx context.Context, productID uuid.UUID, limit int32) ([]*PriceChangeView, error)
	FindByProductKeyset(ctx context.Context, productID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PriceChangeView, error)
}

type QuoteInput struct {
	ProductID uuid.UUID
	RuleID    *uuid.UUID
	Quantity  int
	At        *time.Time
}

type PriceQueries interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	Quote(ctx context.Context, in QuoteInput) (*QuoteView, error)
	History(ctx context.Context, productID uuid.UUID, cursor *Cursor, limit int) ([]*PriceChangeView, *Cursor, error)
}

type priceQueriesImpl struct {
	products ProductReadStore
	changes  PriceChangeReadStore
	uow      shared.UnitOfWork
	cache    shared.RuleCache
	calc     pricing.PriceCalculator
	clock    clock.Clock
}

func NewPriceQueries(
	products ProductReadStore,
	changes PriceChangeReadStore,
	uow shared.UnitOfWork,
	cache shared.RuleCache,
	calc pricing.PriceCalculator,
	clk clock.Clock,
) PriceQueries {
	return &priceQueriesImpl{
		products: products,
		changes:  changes,
		uow:      uow,
		cache:    cache,
		calc:     calc,
		clock:    clk,
	}
}

func (q *priceQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	p, err := q.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Quote evaluates without persisting anything. An explicit rule is evaluated
// whatever its status, so drafts can be previewed.
func (q *priceQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	if in.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	now := q.clock.Now()
	if in.At != nil {
		now = *in.At
	}

	reads := q.uow.CommandReads()
	product, err := reads.ProductByID(ctx, in.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	rule, err := q.pickRule(ctx, reads, in, now)
	if err != nil {
		return nil, err
	}

	view := &QuoteView{
		ProductID:    product.ID,
		BasePrice:    product.BasePrice,
		CurrentPrice: product.CurrentPrice,
		Price:        product.BasePrice,
		Outcome:      OutcomeNoRule,
		EvaluatedAt:  now,
	}
	if rule == nil {
		return view, nil
	}

	signals, err := reads.Signals(ctx, product.ID, now)
	if err != nil {
		return nil, err
	}

	quote := q.calc.Calculate(ctx, product.BasePrice, rule, shared.EvaluationContext(product, signals, now, quantity))
	ruleID := quote.RuleID
	view.RuleID = &ruleID
	view.RuleType = quote.RuleType.String()
	view.Price = quote.Price
	view.Outcome = string(quote.Outcome)
	if quote.Issue != nil {
		view.Issue = quote.Issue.Error()
	}
	return view, nil
}

func (q *priceQueriesImpl) pickRule(ctx context.Context, reads shared.CommandReads, in QuoteInput, now time.Time) (*pricing.Rule, error) {
	if in.RuleID != nil {
		rule, err := reads.RuleByID(ctx, *in.RuleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrPricingRuleNotFound
			}
			return nil, err
		}
		if rule.ProductID() != in.ProductID {
			return nil, ErrRuleProductMismatch
		}
		return rule, nil
	}

	rules, err := shared.LoadActiveRules(ctx, q.cache, reads, in.ProductID)
	if err != nil {
		return nil, err
	}
	rule, ok := pricing.SelectRule(rules, now)
	if !ok {
		return nil, nil
	}
	return rule, nil
}

// History pages a product's price changes newest first. An unknown product
// is ErrProductNotFound rather than an empty page.
func (q *priceQueriesImpl) History(ctx context.Context, productID uuid.UUID, cursor *Cursor, limit int) ([]*PriceChangeView, *Cursor, error) {
	limit = ValidateLimit(limit)
	keyset := cursor != nil && cursor.After != ""
	var lastCreatedAt time.Time
	var lastID uuid.UUID
	if keyset {
		var err error
		if lastCreatedAt, lastID, err = DecodeAfterCursor(cursor.After); err != nil {
			return nil, nil, ErrInvalidCursor
		}
	}
	if _, err := q.GetProduct(ctx, productID); err != nil {
		return nil, nil, err
	}

	var rows []*PriceChangeView
	var err error
	if keyset {
		rows, err = q.changes.FindByProductKeyset(ctx, productID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		rows, err = q.changes.FindByProductFirstPage(ctx, productID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
