package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dynamic-pricing/internal/domain/operator"
	"dynamic-pricing/internal/handler/api"
	"dynamic-pricing/internal/handler/middleware"
	"dynamic-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	PricingRules *api.PricingRuleHandler
	Prices       *api.PriceHandler
	Signals      *api.SignalHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	merchant := authMiddleware.RequireRoleAtLeast(operator.RoleMerchant)
	admin := authMiddleware.RequireRoleAtLeast(operator.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		rules := apiGroup.Group("/pricing-rules")
		addRoutes(rules, []route{
			{Method: http.MethodPost, Path: "", Handler: h.PricingRules.Create, Mw: []gin.HandlerFunc{merchant}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.PricingRules.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.PricingRules.Update, Mw: []gin.HandlerFunc{merchant}},
			{Method: http.MethodPost, Path: "/:id/status", Handler: h.PricingRules.ChangeStatus, Mw: []gin.HandlerFunc{merchant}},
		})

		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Prices.GetProduct},
			{Method: http.MethodGet, Path: "/:id/pricing-rules", Handler: h.PricingRules.ListByProduct},
			{Method: http.MethodPost, Path: "/:id/quote", Handler: h.Prices.Quote},
			{Method: http.MethodPost, Path: "/:id/apply", Handler: h.Prices.Apply, Mw: []gin.HandlerFunc{merchant}},
			{Method: http.MethodPut, Path: "/:id/price", Handler: h.Prices.SetManualPrice, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "/:id/price-changes", Handler: h.Prices.History},
			{Method: http.MethodPost, Path: "/:id/events", Handler: h.Signals.RecordEvent, Mw: []gin.HandlerFunc{merchant}},
			{Method: http.MethodPost, Path: "/:id/competitor-prices", Handler: h.Signals.RecordCompetitorPrice, Mw: []gin.HandlerFunc{merchant}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
