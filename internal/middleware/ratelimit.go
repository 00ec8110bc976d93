package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"estatehub/internal/logger"
	"estatehub/internal/port"
)

// RateLimit rejects requests once the client IP exceeds the limiter's window.
// Limiter failures let the request through.
func RateLimit(limiter port.RateLimiter, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		res, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.LogError(log, "middleware", "RateLimit", key, err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "RATE_LIMITED", "message": "too many requests, please try again later"},
			})
			return
		}
		c.Next()
	}
}
