package pricing

import (
	"context"

	"dynamic-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	inventoryStepPercent = 2
	inventoryMaxPercent  = 50
)

var (
	viewWeight     = decimal.RequireFromString("0.1")
	purchaseWeight = decimal.NewFromInt(10)
)

type Outcome string

const (
	OutcomeAdjusted  Outcome = "adjusted"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeFallback  Outcome = "fallback"
)

// Quote is the result of evaluating one rule. Issue is set only when the
// outcome is a fallback. A fallback carries the base price untouched: bounds
// belong to a rule that could not be evaluated, so they are not applied.
type Quote struct {
	Price     int64
	BasePrice int64
	RuleID    uuid.UUID
	RuleType  RuleType
	Outcome   Outcome
	Issue     error
}

func (q Quote) Changed() bool {
	return q.Price != q.BasePrice
}

type Predictor interface {
	PredictPrice(ctx context.Context, in PredictionInput) (int64, error)
}

type PriceCalculator interface {
	Calculate(ctx context.Context, basePrice int64, rule *Rule, ec EvaluationContext) Quote
}

// Calculator evaluates a single rule. It holds no mutable state and is safe
// for concurrent use; the predictor is only consulted by AI-optimized rules.
type Calculator struct {
	predictor Predictor
}

func NewCalculator(predictor Predictor) *Calculator {
	return &Calculator{predictor: predictor}
}

func (c *Calculator) Calculate(ctx context.Context, basePrice int64, rule *Rule, ec EvaluationContext) Quote {
	q := Quote{Price: basePrice, BasePrice: basePrice}
	if rule == nil {
		return q.fallback(ErrMissingRule)
	}
	q.RuleID = rule.ID()
	q.RuleType = rule.Type()

	if basePrice < 0 {
		q.Price = 0
		return q.fallback(ErrNegativeBasePrice)
	}

	cfg, err := rule.Config()
	if err != nil {
		return q.fallback(err)
	}

	raw, err := c.evaluate(ctx, decimal.NewFromInt(basePrice), rule, cfg, ec)
	if err != nil {
		return q.fallback(err)
	}

	q.Price = rule.Bounds().Clamp(raw.Round(0).IntPart())
	if q.Price == basePrice {
		q.Outcome = OutcomeUnchanged
	} else {
		q.Outcome = OutcomeAdjusted
	}
	return q
}

func (q Quote) fallback(issue error) Quote {
	q.Outcome = OutcomeFallback
	q.Issue = issue
	return q
}

func (c *Calculator) evaluate(ctx context.Context, base decimal.Decimal, rule *Rule, cfg RuleConfig, ec EvaluationContext) (decimal.Decimal, error) {
	switch cfg := cfg.(type) {
	case TimeBasedConfig:
		return timeBased(base, cfg, ec), nil
	case InventoryConfig:
		return inventoryBased(base, cfg, ec), nil
	case DemandConfig:
		return demandBased(base, cfg, ec), nil
	case CompetitorConfig:
		return competitorBased(base, cfg, ec), nil
	case SeasonalConfig:
		return seasonal(base, cfg, ec), nil
	case BundleConfig:
		return bundle(base, cfg, ec), nil
	case VolumeConfig:
		return volume(base, cfg, ec), nil
	case AIConfig:
		return c.aiOptimized(ctx, base, rule, cfg, ec)
	default:
		return decimal.Zero, errs.Mark(ErrInvalidRuleType, ErrInvalidConfiguration)
	}
}

func timeBased(base decimal.Decimal, cfg TimeBasedConfig, ec EvaluationContext) decimal.Decimal {
	if cfg.IsHappyHour(ec.At.Hour()) {
		return discount(base, cfg.HappyHourDiscount)
	}
	if cfg.FlashSaleActive {
		return discount(base, cfg.FlashSaleDiscount)
	}
	return base
}

func inventoryBased(base decimal.Decimal, cfg InventoryConfig, ec EvaluationContext) decimal.Decimal {
	if ec.StockLevel <= 0 || ec.StockLevel > cfg.LowStockThreshold {
		return base
	}
	pct := cfg.BaseDiscount.Add(decimal.NewFromInt(int64((cfg.LowStockThreshold - ec.StockLevel) * inventoryStepPercent)))
	pct = decimal.Min(pct, decimal.NewFromInt(inventoryMaxPercent))
	return discount(base, pct)
}

// DemandScore weighs a purchase as a hundred views.
func DemandScore(views, purchases int) decimal.Decimal {
	return decimal.NewFromInt(int64(views)).Mul(viewWeight).
		Add(decimal.NewFromInt(int64(purchases)).Mul(purchaseWeight))
}

func demandBased(base decimal.Decimal, cfg DemandConfig, ec EvaluationContext) decimal.Decimal {
	score := DemandScore(ec.RecentViews, ec.RecentPurchases)
	switch {
	case score.GreaterThan(cfg.HighDemandThreshold):
		return increase(base, cfg.SurgePercent)
	case score.LessThan(cfg.LowDemandThreshold):
		return discount(base, cfg.DiscountPercent)
	default:
		return base
	}
}

func competitorBased(base decimal.Decimal, cfg CompetitorConfig, ec EvaluationContext) decimal.Decimal {
	var (
		lowest decimal.Decimal
		sum    decimal.Decimal
		n      int64
	)
	for _, p := range ec.CompetitorPrices {
		if p <= 0 {
			continue
		}
		d := decimal.NewFromInt(p)
		if n == 0 || d.LessThan(lowest) {
			lowest = d
		}
		sum = sum.Add(d)
		n++
	}
	if n == 0 {
		return base
	}
	average := sum.Div(decimal.NewFromInt(n))

	switch cfg.Strategy {
	case StrategyMatchLowest:
		return lowest
	case StrategyUndercut:
		return discount(lowest, cfg.UndercutPercent)
	case StrategyMatchAverage:
		return average
	case StrategyPremium:
		return increase(average, cfg.PremiumPercent)
	default:
		return base
	}
}

func seasonal(base decimal.Decimal, cfg SeasonalConfig, ec EvaluationContext) decimal.Decimal {
	adj, ok := cfg.Adjustments[ec.At.Month()]
	if !ok {
		return base
	}
	return increase(base, adj)
}

func bundle(base decimal.Decimal, cfg BundleConfig, ec EvaluationContext) decimal.Decimal {
	switch {
	case ec.Quantity >= 10:
		return discount(base, cfg.LargeDiscount)
	case ec.Quantity >= 5:
		return discount(base, cfg.MediumDiscount)
	case ec.Quantity >= 2:
		return discount(base, cfg.SmallDiscount)
	default:
		return base
	}
}

func volume(base decimal.Decimal, cfg VolumeConfig, ec EvaluationContext) decimal.Decimal {
	var best *VolumeTier
	for i := range cfg.Tiers {
		if cfg.Tiers[i].MinQuantity <= ec.Quantity {
			best = &cfg.Tiers[i]
		}
	}
	if best == nil {
		return base
	}
	return discount(base, best.DiscountPercent)
}

func (c *Calculator) aiOptimized(ctx context.Context, base decimal.Decimal, rule *Rule, cfg AIConfig, ec EvaluationContext) (decimal.Decimal, error) {
	if c.predictor == nil {
		return decimal.Zero, ErrPredictorUnavailable
	}
	predicted, err := c.predictor.PredictPrice(ctx, PredictionInput{
		ProductID:        rule.ProductID().String(),
		Model:            cfg.Model,
		BasePrice:        base.IntPart(),
		At:               ec.At,
		StockLevel:       ec.StockLevel,
		RecentViews:      ec.RecentViews,
		RecentPurchases:  ec.RecentPurchases,
		CompetitorPrices: ec.CompetitorPrices,
		Quantity:         ec.Quantity,
	})
	if err != nil {
		return decimal.Zero, errs.Mark(err, ErrPredictorUnavailable)
	}
	return decimal.NewFromInt(predicted), nil
}

func discount(price, pct decimal.Decimal) decimal.Decimal {
	return price.Mul(hundred.Sub(pct)).Div(hundred)
}

func increase(price, pct decimal.Decimal) decimal.Decimal {
	return price.Mul(hundred.Add(pct)).Div(hundred)
}
