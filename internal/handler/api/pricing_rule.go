package api

import (
	"net/http"

	reqdto "dynamic-pricing/internal/handler/dto/request"
	resdto "dynamic-pricing/internal/handler/dto/response"
	"dynamic-pricing/internal/handler/httperr"
	"dynamic-pricing/internal/handler/middleware"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingRuleHandler struct {
	cmds commands.PricingRuleCommands
	q    queries.PricingRuleQueries
}

func NewPricingRuleHandler(cmds commands.PricingRuleCommands, q queries.PricingRuleQueries) *PricingRuleHandler {
	return &PricingRuleHandler{cmds: cmds, q: q}
}

// @Summary Create pricing rule
// @Description Create a rule for a product. It starts as a draft unless activate is set.
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePricingRuleRequest true "Create rule request"
// @Success 201 {object} resdto.CreatePricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing-rules [post]
func (h *PricingRuleHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/pricing-rules/"+result.RuleID.String())
	c.JSON(http.StatusCreated, resdto.CreatePricingRuleResponse{
		ID:     result.RuleID,
		Status: result.Status.String(),
	})
}

// @Summary Get pricing rule
// @Tags pricing-rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing-rules/{id} [get]
func (h *PricingRuleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRule(c, http.StatusOK, view)
}

// @Summary Update pricing rule
// @Description Replace bounds and window, optionally rename, reprioritize or reconfigure. Archived and expired rules are read-only.
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpdatePricingRuleRequest true "Update rule request"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /pricing-rules/{id} [put]
func (h *PricingRuleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRule(c, http.StatusOK, view)
}

// @Summary Change pricing rule status
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.ChangeRuleStatusRequest true "Target status"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /pricing-rules/{id}/status [post]
func (h *PricingRuleHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeRuleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRule(c, http.StatusOK, view)
}

// @Summary List a product's pricing rules
// @Tags pricing-rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param status query string false "Only rules in this status"
// @Success 200 {array} resdto.PricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{id}/pricing-rules [get]
func (h *PricingRuleHandler) ListByProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListByProduct(c.Request.Context(), productID, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPricingRuleList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing_rules": res})
}

func (h *PricingRuleHandler) respondRule(c *gin.Context, status int, view *queries.PricingRuleView) {
	res, err := resdto.FromPricingRuleView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
