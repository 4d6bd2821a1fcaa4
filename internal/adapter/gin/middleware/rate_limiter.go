package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-todo-service/internal/adapter/gin/handler"
	"user-todo-service/internal/adapter/ratelimit"
	"user-todo-service/pkg/logger"
)

// RateLimiter returns a Gin middleware that takes one token per request from
// a bucket keyed by method, path and client IP.
func RateLimiter(limiter *ratelimit.Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Enabled() {
			c.Next()
			return
		}

		// Use Token Bucket key prefix for consistency with gRPC
		key := fmt.Sprintf("ratelimit:tb:%s:%s:%s", c.Request.Method, c.Request.URL.Path, c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// fail open
			logger.WithContext(c.Request.Context(), log).Warn("rate limiter redis error, allowing request",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, handler.ErrorResponse{
				Success: false,
				Message: "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
