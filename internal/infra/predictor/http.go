package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/pkg/errs"
)

var ErrBadPrediction = errs.New("predictor returned an unusable price")

type predictRequest struct {
	ProductID        string    `json:"product_id"`
	Model            string    `json:"model,omitempty"`
	BasePrice        int64     `json:"base_price"`
	At               time.Time `json:"at"`
	StockLevel       int       `json:"stock_level"`
	RecentViews      int       `json:"recent_views"`
	RecentPurchases  int       `json:"recent_purchases"`
	CompetitorPrices []int64   `json:"competitor_prices"`
	Quantity         int       `json:"quantity"`
}

type predictResponse struct {
	Price *int64 `json:"price"`
}

// HTTPPredictor asks a remote model service for a price. The endpoint is
// expected to answer POST requests with {"price": <minor units>}.
type HTTPPredictor struct {
	url    string
	client *http.Client
}

func NewHTTPPredictor(url string, timeout time.Duration) *HTTPPredictor {
	return &HTTPPredictor{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPPredictor) PredictPrice(ctx context.Context, in pricing.PredictionInput) (int64, error) {
	competitors := in.CompetitorPrices
	if competitors == nil {
		competitors = []int64{}
	}
	body, err := json.Marshal(predictRequest{
		ProductID:        in.ProductID,
		Model:            in.Model,
		BasePrice:        in.BasePrice,
		At:               in.At,
		StockLevel:       in.StockLevel,
		RecentViews:      in.RecentViews,
		RecentPurchases:  in.RecentPurchases,
		CompetitorPrices: competitors,
		Quantity:         in.Quantity,
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to encode prediction request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return 0, errs.Wrap(err, "failed to build prediction request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "prediction request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errs.Newf("predictor responded with status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, errs.Mark(errs.Wrap(err, "failed to decode prediction"), ErrBadPrediction)
	}
	if out.Price == nil || *out.Price < 0 {
		return 0, ErrBadPrediction
	}
	return *out.Price, nil
}
