package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-todo-service/pkg/logger"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Logger records every request before it is dispatched and again once the
// response is written.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		reqLog := logger.WithContext(c.Request.Context(), log)

		reqLog.Info("request received",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("timestamp", start.UTC().Format(timestampLayout)),
		)

		c.Next()

		reqLog.Info("request completed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
