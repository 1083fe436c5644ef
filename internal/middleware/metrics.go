package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"brandscope/api/internal/metrics"
)

// Metrics records one observation per request, labelled with the route
// template rather than the raw path to keep cardinality bounded.
func Metrics(stats *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		stats.RecordRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
