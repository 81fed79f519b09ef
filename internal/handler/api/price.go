package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	reqdto "dynamic-pricing/internal/handler/dto/request"
	resdto "dynamic-pricing/internal/handler/dto/response"
	"dynamic-pricing/internal/handler/httperr"
	"dynamic-pricing/internal/handler/middleware"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	cmds commands.PriceCommands
	q    queries.PriceQueries
}

func NewPriceHandler(cmds commands.PriceCommands, q queries.PriceQueries) *PriceHandler {
	return &PriceHandler{cmds: cmds, q: q}
}

// @Summary Get product
// @Tags prices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *PriceHandler) GetProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetProduct(c.Request.Context(), productID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProductView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote a price
// @Description Evaluate without persisting. An explicit rule_id is evaluated whatever its status.
// @Tags prices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.QuoteRequest false "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products/{id}/quote [post]
func (h *PriceHandler) Quote(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.QuoteRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	view, err := h.q.Quote(c.Request.Context(), req.ToQuery(productID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Apply pricing
// @Description Evaluate and store the result as the current price when it differs.
// @Tags prices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ApplyPriceRequest false "Apply request"
// @Success 200 {object} resdto.ApplyPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products/{id}/apply [post]
func (h *PriceHandler) Apply(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ApplyPriceRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.cmds.ApplyRule(c.Request.Context(), req.ToCommand(productID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplyResult(productID, result))
}

// @Summary Set price manually
// @Description Override base and current price. Admin only.
// @Tags prices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SetManualPriceRequest true "Manual price"
// @Success 200 {object} resdto.PriceChangeResponse
// @Success 204 "Base price realigned, current price unchanged"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id}/price [put]
func (h *PriceHandler) SetManualPrice(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.SetManualPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	change, err := h.cmds.SetManualPrice(c.Request.Context(), req.ToCommand(productID), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if change == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceChange(change))
}

// @Summary Price change history
// @Description Newest first, keyset paginated.
// @Tags prices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param cursor query string false "next_cursor from a previous page"
// @Success 200 {object} resdto.PriceChangeListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/price-changes [get]
func (h *PriceHandler) History(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if v := c.Query("cursor"); v != "" {
		cursor = &queries.Cursor{After: v}
	}
	items, next, err := h.q.History(c.Request.Context(), productID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	changes, err := resdto.FromPriceChangeList(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res := resdto.PriceChangeListResponse{PriceChanges: changes}
	if next != nil {
		res.NextCursor = next.After
	}
	c.JSON(http.StatusOK, res)
}

// bindOptionalJSON accepts an empty body as all defaults.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
