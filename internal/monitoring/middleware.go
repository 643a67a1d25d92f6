package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for HTTP metrics collection.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(method, path, status, time.Since(start))
	}
}

// Timer measures one tool call's duration.
type Timer struct {
	start   time.Time
	metrics *Metrics
	service string
	tool    string
}

// NewTimer creates a timer for a tool call.
func NewTimer(metrics *Metrics, service, tool string) *Timer {
	return &Timer{start: time.Now(), metrics: metrics, service: service, tool: tool}
}

// Stop stops the timer and records the call.
func (t *Timer) Stop(status string) {
	t.metrics.RecordToolCall(t.service, t.tool, status, time.Since(t.start))
}
