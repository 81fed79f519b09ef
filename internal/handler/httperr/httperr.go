package httperr

import (
	"errors"
	"net/http"

	"dynamic-pricing/internal/domain/pricing"
	"dynamic-pricing/internal/usecase/commands"
	"dynamic-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
}

// Ordered: usecase sentinels are marked on top of domain and infra errors,
// so they must be checked first.
var mappings = []mapping{
	{commands.ErrProductNotFound, http.StatusNotFound},
	{commands.ErrPricingRuleNotFound, http.StatusNotFound},
	{queries.ErrProductNotFound, http.StatusNotFound},
	{queries.ErrPricingRuleNotFound, http.StatusNotFound},

	{commands.ErrRuleProductMismatch, http.StatusUnprocessableEntity},
	{queries.ErrRuleProductMismatch, http.StatusUnprocessableEntity},
	{commands.ErrRuleNotApplicable, http.StatusUnprocessableEntity},
	{commands.ErrNoApplicableRule, http.StatusUnprocessableEntity},

	{pricing.ErrInvalidStatusTransition, http.StatusConflict},
	{pricing.ErrRuleNotEditable, http.StatusConflict},
	{pricing.ErrNoPriceChange, http.StatusConflict},

	{commands.ErrInvalidQuantity, http.StatusBadRequest},
	{commands.ErrInvalidEventKind, http.StatusBadRequest},
	{commands.ErrInvalidCompetitor, http.StatusBadRequest},
	{commands.ErrInvalidObservedPrice, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
	{queries.ErrInvalidQuantity, http.StatusBadRequest},
	{queries.ErrInvalidStatusFilter, http.StatusBadRequest},
	{pricing.ErrInvalidRuleType, http.StatusBadRequest},
	{pricing.ErrInvalidStatus, http.StatusBadRequest},
	{pricing.ErrInvalidPriority, http.StatusBadRequest},
	{pricing.ErrEmptyRuleName, http.StatusBadRequest},
	{pricing.ErrRuleNameTooLong, http.StatusBadRequest},
	{pricing.ErrInvalidPriceBounds, http.StatusBadRequest},
	{pricing.ErrNegativePriceBound, http.StatusBadRequest},
	{pricing.ErrInvalidDateWindow, http.StatusBadRequest},
	{pricing.ErrInvalidConfiguration, http.StatusBadRequest},
	{pricing.ErrNegativePrice, http.StatusBadRequest},
}

// StatusOf maps a usecase or domain error to its HTTP status. Unknown errors
// are internal.
func StatusOf(err error) int {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// Abort responds with the mapped status. Client errors echo the sentinel's
// message; internal errors never leak their text.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := "Internal server error"
	if status < http.StatusInternalServerError {
		msg = publicMessage(err)
	}
	AbortWithError(c, status, err, msg, nil)
}

func publicMessage(err error) string {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			if errors.Is(err, pricing.ErrInvalidConfiguration) {
				// carries the offending key
				return err.Error()
			}
			return m.target.Error()
		}
	}
	return err.Error()
}
