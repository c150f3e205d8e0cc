package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog logs one line per request through the service logger.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		args := []any{
			"http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case status >= 500:
			m.l.Error(ctx, args...)
		case status >= 400:
			m.l.Warn(ctx, args...)
		default:
			m.l.Info(ctx, args...)
		}
	}
}
