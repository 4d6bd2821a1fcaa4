package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-todo-service/cmd/api/infrastructure"
	"user-todo-service/internal/adapter/db/postgres"
	ginhandler "user-todo-service/internal/adapter/gin/handler"
	grpcadapter "user-todo-service/internal/adapter/grpc"
	"user-todo-service/internal/adapter/ratelimit"
	"user-todo-service/internal/config"
	"user-todo-service/internal/usecase/todo"
	"user-todo-service/internal/usecase/user"
	redisclient "user-todo-service/pkg/redis"
)

const schemaTimeout = 10 * time.Second

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client // nil unless rate limiting is enabled
	RateLimiter *ratelimit.Limiter  // nil unless rate limiting is enabled
	UserUC      user.Usecase
	TodoUC      todo.Usecase
	UserHandler *ginhandler.UserHandler
	TodoHandler *ginhandler.TodoHandler
	Health      *grpcadapter.HealthChecker
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c := &Container{Config: cfg, Logger: l, DB: db}

	// A store that is down at boot must not keep the service from starting.
	schemaCtx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()
	if err := postgres.EnsureSchema(schemaCtx, db); err != nil {
		l.Error("failed to ensure database schema", zap.Error(err))
	} else {
		l.Info("database schema ready")
	}

	if cfg.RateLimit.Enabled {
		rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
		c.RateLimiter = ratelimit.New(rdb.Client, ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           true,
		}, l)
	}

	strict := cfg.API.StrictValidation
	c.UserUC = user.New(postgres.NewUserRepoPG(db, l), l, user.Options{StrictValidation: strict})
	c.TodoUC = todo.New(postgres.NewTodoRepoPG(db, l), l, todo.Options{StrictValidation: strict})

	policy := ginhandler.ErrorPolicy{ExposeStoreErrors: cfg.API.ExposeStoreErrors}
	c.UserHandler = ginhandler.NewUserHandler(c.UserUC, l, policy)
	c.TodoHandler = ginhandler.NewTodoHandler(c.TodoUC, l, policy)

	if cfg.App.GRPCEnabled {
		sqlDB, err := db.DB()
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		interval := time.Duration(cfg.App.HealthCheckInterval) * time.Second
		c.Health = grpcadapter.NewHealthChecker(sqlDB, cfg.Logger.ServiceName, interval, l)
	}

	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
