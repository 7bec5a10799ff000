package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"todo-api/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping the
// label set bounded.
const unmatchedRoute = "unmatched"

// Metrics records the duration of every request by method, route and status
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		collector.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
