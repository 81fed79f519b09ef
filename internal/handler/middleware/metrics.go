package middleware

import (
	"strconv"
	"time"

	"dynamic-pricing/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per route template. The
// /metrics endpoint itself is not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
