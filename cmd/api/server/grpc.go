package server

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"

	grpcadapter "user-todo-service/internal/adapter/grpc"
	"user-todo-service/internal/adapter/grpc/middleware"
	"user-todo-service/internal/adapter/ratelimit"
	"user-todo-service/pkg/logger"
)

// SetupGRPC creates the gRPC server exposing the health service.
func SetupGRPC(health *grpcadapter.HealthChecker, rateLimiter *ratelimit.Limiter, l *zap.Logger) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{logger.RequestIDInterceptor()}
	if rateLimiter.Enabled() {
		interceptors = append(interceptors, middleware.NewRateLimiter(rateLimiter, l).UnaryInterceptor())
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	health.Register(grpcServer)

	return grpcServer
}
