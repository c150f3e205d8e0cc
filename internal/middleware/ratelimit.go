package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"breeze/pkg/ratelimit"
	"breeze/pkg/response"
)

const rateLimitMessage = "Too many requests, please try again later."

// RateLimit rejects clients that exceed their per-IP request allowance with 429 and Retry-After.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := ratelimit.ClientIP(c.Request)
		ok, retry := m.limiter.Allow(ip)
		if !ok {
			secs := int(math.Ceil(retry.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s over limit, retry in %ds", ip, secs)
			response.TooManyRequests(c, rateLimitMessage)
			return
		}
		c.Next()
	}
}
