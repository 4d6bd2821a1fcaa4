package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-todo-service/internal/adapter/gin/handler"
	"user-todo-service/internal/adapter/gin/middleware"
	"user-todo-service/internal/adapter/ratelimit"
)

// SetupRouter configures and returns a Gin router with all routes and middleware.
// rateLimiter may be nil.
func SetupRouter(
	userHandler *handler.UserHandler,
	todoHandler *handler.TodoHandler,
	rateLimiter *ratelimit.Limiter,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(rateLimiter, log))

	router.GET("/", handler.Hello)

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	todos := router.Group("/todos")
	{
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("", todoHandler.ListTodos)
	}

	// Paths match exactly. A known path with another method, or with a
	// trailing slash, is a routing miss as well.
	router.HandleMethodNotAllowed = false
	router.RedirectTrailingSlash = false
	router.NoRoute(handler.RouteNotFound)

	return router
}
