package api

import (
	"net/http"

	reqdto "dynamic-pricing/internal/handler/dto/request"
	"dynamic-pricing/internal/handler/httperr"
	"dynamic-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SignalHandler struct {
	cmds commands.SignalCommands
}

func NewSignalHandler(cmds commands.SignalCommands) *SignalHandler {
	return &SignalHandler{cmds: cmds}
}

// @Summary Record a demand event
// @Description Count a product view or purchase towards demand-based pricing.
// @Tags signals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.RecordEventRequest true "Event"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/events [post]
func (h *SignalHandler) RecordEvent(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.RecordEvent(c.Request.Context(), req.ToCommand(productID)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Record a competitor price
// @Tags signals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.RecordCompetitorPriceRequest true "Observation"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/competitor-prices [post]
func (h *SignalHandler) RecordCompetitorPrice(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RecordCompetitorPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.RecordCompetitorPrice(c.Request.Context(), req.ToCommand(productID)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
