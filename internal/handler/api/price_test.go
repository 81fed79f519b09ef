//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"dynamic-pricing/internal/domain/operator"
	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/handler/api"
	"dynamic-pricing/internal/handler/middleware"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/queries"
	"dynamic-pricing/tests/common/httptest"
	commandsmock "dynamic-pricing/tests/mock/commands"
	queriesmock "dynamic-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PriceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPriceCommands
	mockQueries  *queriesmock.MockPriceQueries
	operatorID   uuid.UUID
	productID    uuid.UUID
}

func (s *PriceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPriceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPriceQueries(s.mockCtrl)
	s.operatorID = uuid.New()
	s.productID = uuid.New()
	handler := api.NewPriceHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.operatorID, operator.RoleAdmin)
	s.router.GET("/products/:id", auth, handler.GetProduct)
	s.router.POST("/products/:id/quote", auth, handler.Quote)
	s.router.POST("/products/:id/apply", auth, handler.Apply)
	s.router.PUT("/products/:id/price", auth, handler.SetManualPrice)
	s.router.GET("/products/:id/price-changes", auth, handler.History)
}

func (s *PriceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPriceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PriceHandlerTestSuite))
}

func (s *PriceHandlerTestSuite) path(suffix string) string {
	return "/products/" + s.productID.String() + suffix
}

func (s *PriceHandlerTestSuite) TestGetProduct() {
	s.mockQueries.EXPECT().GetProduct(gomock.Any(), s.productID).Return(&queries.ProductView{
		ID: s.productID, SKU: "SKU-9", Name: "Kettle", BasePrice: 4990, CurrentPrice: 4490, StockLevel: 12,
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path(""), nil, "token")

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("SKU-9", body["sku"])
	s.EqualValues(4490, body["current_price"])
}

func (s *PriceHandlerTestSuite) TestQuote() {
	ruleID := uuid.New()
	at := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	s.Run("empty body uses defaults", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), queries.QuoteInput{ProductID: s.productID, Quantity: 1}).
			Return(&queries.QuoteView{ProductID: s.productID, BasePrice: 1000, Price: 1000, Outcome: queries.OutcomeNoRule}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/quote"), nil, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("no_rule", body["outcome"])
		s.NotContains(body, "rule_id")
	})

	s.Run("explicit rule, time and quantity", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), queries.QuoteInput{ProductID: s.productID, RuleID: &ruleID, Quantity: 5, At: &at}).
			Return(&queries.QuoteView{ProductID: s.productID, RuleID: &ruleID, RuleType: "seasonal", BasePrice: 1000, Price: 1150, Outcome: "adjusted", EvaluatedAt: at}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/quote"),
			map[string]any{"rule_id": ruleID, "quantity": 5, "at": at}, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(1150, body["price"])
		s.Equal(ruleID.String(), body["rule_id"])
	})

	s.Run("zero quantity is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/quote"), map[string]any{"quantity": 0}, "token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rule of another product", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, queries.ErrRuleProductMismatch)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/quote"), map[string]any{"rule_id": ruleID}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "another product")
	})
}

func (s *PriceHandlerTestSuite) TestApply() {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ruleID := uuid.New()

	s.Run("price moved", func() {
		quote := pricing.Quote{Price: 800, BasePrice: 1000, RuleID: ruleID, RuleType: pricing.RuleTypeTimeBased, Outcome: pricing.OutcomeAdjusted}
		change, err := pricing.NewRuleDrivenChange(s.productID, quote, 1000, now)
		require.NoError(s.T(), err)

		s.mockCommands.EXPECT().ApplyRule(gomock.Any(), commands.ApplyPriceRequest{ProductID: s.productID, Quantity: 1}).
			Return(&commands.ApplyPriceResult{Quote: quote, Change: change, CurrentPrice: 800}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/apply"), map[string]any{}, "token")

		var body struct {
			Outcome      string `json:"outcome"`
			CurrentPrice int64  `json:"current_price"`
			RuleID       string `json:"rule_id"`
			Change       *struct {
				OldPrice      int64  `json:"old_price"`
				NewPrice      int64  `json:"new_price"`
				PercentChange string `json:"percent_change"`
				Source        string `json:"source"`
			} `json:"change"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("adjusted", body.Outcome)
		s.Equal(int64(800), body.CurrentPrice)
		s.Equal(ruleID.String(), body.RuleID)
		s.Require().NotNil(body.Change)
		s.Equal("-20.00", body.Change.PercentChange)
		s.Equal("rule", body.Change.Source)
	})

	s.Run("fallback leaves the price", func() {
		quote := pricing.Quote{Price: 1000, BasePrice: 1000, RuleID: ruleID, RuleType: pricing.RuleTypeAIOptimized,
			Outcome: pricing.OutcomeFallback, Issue: pricing.ErrPredictorUnavailable}
		s.mockCommands.EXPECT().ApplyRule(gomock.Any(), gomock.Any()).
			Return(&commands.ApplyPriceResult{Quote: quote, CurrentPrice: 950}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/apply"), nil, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("fallback", body["outcome"])
		s.Equal("price predictor unavailable", body["issue"])
		s.EqualValues(950, body["current_price"])
		s.NotContains(body, "change")
	})

	s.Run("no applicable rule", func() {
		s.mockCommands.EXPECT().ApplyRule(gomock.Any(), gomock.Any()).Return(nil, commands.ErrNoApplicableRule)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/apply"), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "no applicable pricing rule")
	})
}

func (s *PriceHandlerTestSuite) TestSetManualPrice() {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.Run("records the change with the actor", func() {
		change, err := pricing.NewManualChange(s.productID, 1000, 1200, "supplier increase", s.operatorID, now)
		require.NoError(s.T(), err)
		s.mockCommands.EXPECT().SetManualPrice(gomock.Any(),
			commands.SetManualPriceRequest{ProductID: s.productID, Price: 1200, Reason: "supplier increase"}, s.operatorID).
			Return(change, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path("/price"),
			map[string]any{"price": 1200, "reason": "supplier increase"}, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("manual", body["source"])
		s.Equal(s.operatorID.String(), body["actor_id"])
	})

	s.Run("base realigned only", func() {
		s.mockCommands.EXPECT().SetManualPrice(gomock.Any(), gomock.Any(), s.operatorID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path("/price"), map[string]any{"price": 900}, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("zero price is allowed", func() {
		s.mockCommands.EXPECT().SetManualPrice(gomock.Any(),
			commands.SetManualPriceRequest{ProductID: s.productID, Price: 0}, s.operatorID).Return(nil, pricing.ErrNoPriceChange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path("/price"), map[string]any{"price": 0}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "old and new price are equal")
	})

	s.Run("missing and negative price", func() {
		for _, body := range []map[string]any{{}, {"price": -5}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path("/price"), body, "token")
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})
}

func (s *PriceHandlerTestSuite) TestHistory() {
	s.Run("first page with cursor", func() {
		items := []*queries.PriceChangeView{{ID: uuid.New(), ProductID: s.productID, OldPrice: 1000, NewPrice: 900, PercentChange: "-10.00", Source: "rule"}}
		s.mockQueries.EXPECT().History(gomock.Any(), s.productID, nil, 1).
			Return(items, &queries.Cursor{After: "next-page"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/price-changes?limit=1"), nil, "token")

		var body struct {
			PriceChanges []map[string]any `json:"price_changes"`
			NextCursor   string           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.PriceChanges, 1)
		s.Equal("-10.00", body.PriceChanges[0]["percent_change"])
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("cursor is passed through and limit clamped", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.productID, &queries.Cursor{After: "abc"}, 100).
			Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/price-changes?cursor=abc&limit=5000"), nil, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]any{}, body["price_changes"])
		s.NotContains(body, "next_cursor")
	})

	s.Run("bad cursor", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.productID, gomock.Any(), queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/price-changes?cursor=%25%25"), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("after is not a query parameter", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.productID, nil, queries.DefaultListLimit).
			Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/price-changes?after=abc"), nil, "token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown product", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.productID, nil, queries.DefaultListLimit).
			Return(nil, nil, queries.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/price-changes"), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product not found")
	})

	s.Run("non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/price-changes?limit=ten"), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}
