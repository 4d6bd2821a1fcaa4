package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginhandler "user-todo-service/internal/adapter/gin/handler"
	ginrouter "user-todo-service/internal/adapter/gin/router"
	"user-todo-service/internal/adapter/ratelimit"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	userHandler *ginhandler.UserHandler,
	todoHandler *ginhandler.TodoHandler,
	rateLimiter *ratelimit.Limiter,
	ginAddr string,
	l *zap.Logger,
) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(userHandler, todoHandler, rateLimiter, l)

	l.Info("Gin REST API configured", zap.String("address", ginAddr))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
