package middleware

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"user-todo-service/internal/adapter/ratelimit"
)

// RateLimiter applies the shared token bucket to unary gRPC calls.
type RateLimiter struct {
	limiter *ratelimit.Limiter
	log     *zap.Logger
}

// NewRateLimiter creates a new rate limiter interceptor.
func NewRateLimiter(limiter *ratelimit.Limiter, log *zap.Logger) *RateLimiter {
	return &RateLimiter{limiter: limiter, log: log}
}

// UnaryInterceptor returns a gRPC unary interceptor for rate limiting.
func (rl *RateLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !rl.limiter.Enabled() {
			return handler(ctx, req)
		}

		clientIP := rl.getClientIP(ctx)
		key := fmt.Sprintf("ratelimit:tb:%s:%s", info.FullMethod, clientIP)

		allowed, err := rl.limiter.Allow(ctx, key)
		if err != nil {
			// On Redis error, allow request to proceed (fail open)
			rl.log.Warn("rate limiter redis error, allowing request",
				zap.String("client_ip", clientIP),
				zap.String("method", info.FullMethod),
				zap.Error(err),
			)
			return handler(ctx, req)
		}

		if !allowed {
			rl.log.Warn("rate limit exceeded",
				zap.String("client_ip", clientIP),
				zap.String("method", info.FullMethod),
			)
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}

		return handler(ctx, req)
	}
}

// getClientIP extracts the client IP address from the gRPC context.
func (rl *RateLimiter) getClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if xff := md.Get("x-forwarded-for"); len(xff) > 0 {
			return xff[0]
		}
		if xri := md.Get("x-real-ip"); len(xri) > 0 {
			return xri[0]
		}
	}

	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}

	return "unknown"
}
