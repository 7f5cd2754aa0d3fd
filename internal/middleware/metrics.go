package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request counts and latency by method, route template and status.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.HTTPRequestDurationMs.WithLabelValues(c.Request.Method, route, status).
			Observe(float64(time.Since(start).Microseconds()) / 1000)
	}
}
