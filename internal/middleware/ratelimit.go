package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit limits each client IP to the configured requests per minute,
// with a small burst. Disabled when the limit is 0.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimitPerMin <= 0 {
			c.Next()
			return
		}

		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func (m *Middleware) limiterFor(ip string) *rate.Limiter {
	limiter, ok := m.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(m.rateLimitPerMin)/60.0), m.rateLimitPerMin)
		m.limiters.Add(ip, limiter)
	}
	return limiter
}
