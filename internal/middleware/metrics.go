package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/slidecoach/api/internal/metrics"
)

// Metrics counts requests by method, route, and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
