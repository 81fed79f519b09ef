//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"dynamic-pricing/internal/domain/operator"
	"dynamic-pricing/internal/handler/api"
	"dynamic-pricing/internal/handler/middleware"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/tests/common/httptest"
	"dynamic-pricing/tests/common/testutil"
	commandsmock "dynamic-pricing/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SignalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSignalCommands
	productID    uuid.UUID
}

func (s *SignalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSignalCommands(s.mockCtrl)
	s.productID = uuid.New()
	handler := api.NewSignalHandler(s.mockCommands)

	auth := fakeAuth(uuid.New(), operator.RoleMerchant)
	s.router.POST("/products/:id/events", auth, handler.RecordEvent)
	s.router.POST("/products/:id/competitor-prices", auth, handler.RecordCompetitorPrice)
}

func (s *SignalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSignalHandlerSuite(t *testing.T) {
	suite.Run(t, new(SignalHandlerTestSuite))
}

func (s *SignalHandlerTestSuite) TestRecordEvent() {
	url := "/products/" + s.productID.String() + "/events"

	s.Run("purchase with quantity", func() {
		s.mockCommands.EXPECT().RecordEvent(gomock.Any(),
			commands.RecordEventRequest{ProductID: s.productID, Kind: "purchase", Quantity: 3}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"kind": "purchase", "quantity": 3}, "token")

		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("quantity defaults to one", func() {
		s.mockCommands.EXPECT().RecordEvent(gomock.Any(),
			commands.RecordEventRequest{ProductID: s.productID, Kind: "view", Quantity: 1}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"kind": "view"}, "token")

		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("quantity above int32 range is rejected before the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"kind": "purchase", "quantity": int64(1)<<32 + 1}, "token")

		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("unknown kind", func() {
		s.mockCommands.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(commands.ErrInvalidEventKind)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"kind": "click"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "event kind")
	})

	s.Run("unknown product", func() {
		s.mockCommands.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(commands.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"kind": "view"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product not found")
	})
}

func (s *SignalHandlerTestSuite) TestRecordCompetitorPrice() {
	url := "/products/" + s.productID.String() + "/competitor-prices"
	reqBody := map[string]any{"competitor": "acme", "price": 1299}

	s.Run("accepted", func() {
		s.mockCommands.EXPECT().RecordCompetitorPrice(gomock.Any(),
			commands.RecordCompetitorPriceRequest{ProductID: s.productID, Competitor: "acme", Price: 1299}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		s.Equal(http.StatusAccepted, rec.Code)
	})

	invalid := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing competitor", testutil.Set("competitor", nil)},
		{"competitor too long", testutil.Set("competitor", strings.Repeat("c", 101))},
		{"zero price", testutil.Set("price", 0)},
		{"negative price", testutil.Set("price", -10)},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.JSONMap(s.T(), reqBody, tc.mutate), "token")
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}
