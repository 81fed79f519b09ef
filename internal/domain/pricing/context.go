package pricing

import "time"

// EvaluationContext is the snapshot of signals a rule is evaluated against.
// RecentViews and RecentPurchases cover the last 24 hours.
type EvaluationContext struct {
	At               time.Time
	StockLevel       int
	RecentViews      int
	RecentPurchases  int
	CompetitorPrices []int64
	Quantity         int
}

// DemandWindow is the lookback the recent counters are aggregated over.
const DemandWindow = 24 * time.Hour

// PredictionInput is what an AI-optimized rule hands to the predictor.
type PredictionInput struct {
	ProductID        string
	Model            string
	BasePrice        int64
	At               time.Time
	StockLevel       int
	RecentViews      int
	RecentPurchases  int
	CompetitorPrices []int64
	Quantity         int
}
