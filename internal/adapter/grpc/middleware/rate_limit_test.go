package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"user-todo-service/internal/adapter/ratelimit"
)

const healthCheck = "/grpc.health.v1.Health/Check"

// setupInterceptor wires the interceptor to a miniredis-backed limiter
// with a frozen clock.
func setupInterceptor(t *testing.T, cfg ratelimit.Config) (grpc.UnaryServerInterceptor, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	mr.SetTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	logger := zaptest.NewLogger(t)
	rl := NewRateLimiter(ratelimit.New(client, cfg, logger), logger)
	return rl.UnaryInterceptor(), mr
}

// mockHandler is a simple handler that returns "success"
func mockHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "success", nil
}

func peerContext(addr string) context.Context {
	tcpAddr, _ := net.ResolveTCPAddr("tcp", addr)
	return peer.NewContext(context.Background(), &peer.Peer{Addr: tcpAddr})
}

func TestRateLimiter_WithinLimit(t *testing.T) {
	interceptor, _ := setupInterceptor(t, ratelimit.Config{RequestsPerSecond: 10, BurstCapacity: 10, Enabled: true})
	ctx := peerContext("127.0.0.1:12345")
	info := &grpc.UnaryServerInfo{FullMethod: healthCheck}

	for i := 0; i < 5; i++ {
		resp, err := interceptor(ctx, nil, info, mockHandler)
		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	}
}

func TestRateLimiter_ExceedLimit(t *testing.T) {
	interceptor, mr := setupInterceptor(t, ratelimit.Config{RequestsPerSecond: 5, BurstCapacity: 5, Enabled: true})
	ctx := peerContext("127.0.0.1:12345")
	info := &grpc.UnaryServerInfo{FullMethod: healthCheck}

	for i := 0; i < 5; i++ {
		resp, err := interceptor(ctx, nil, info, mockHandler)
		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	}

	resp, err := interceptor(ctx, nil, info, mockHandler)
	require.Error(t, err)
	assert.Nil(t, resp)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.ResourceExhausted, st.Code())
	assert.Contains(t, st.Message(), "rate limit exceeded")

	// Verify TTL is set on the key
	ttl := mr.TTL("ratelimit:tb:" + healthCheck + ":127.0.0.1:12345")
	assert.Greater(t, ttl.Seconds(), 0.0)
	assert.LessOrEqual(t, ttl.Seconds(), 60.0)
}

func TestRateLimiter_Disabled(t *testing.T) {
	interceptor, _ := setupInterceptor(t, ratelimit.Config{RequestsPerSecond: 1, BurstCapacity: 1, Enabled: false})
	ctx := peerContext("127.0.0.1:12345")
	info := &grpc.UnaryServerInfo{FullMethod: healthCheck}

	for i := 0; i < 10; i++ {
		resp, err := interceptor(ctx, nil, info, mockHandler)
		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	}
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	interceptor, _ := setupInterceptor(t, ratelimit.Config{RequestsPerSecond: 1, BurstCapacity: 2, Enabled: true})
	info := &grpc.UnaryServerInfo{FullMethod: healthCheck}

	ctx1 := peerContext("192.168.1.1:12345")
	for i := 0; i < 2; i++ {
		_, err := interceptor(ctx1, nil, info, mockHandler)
		require.NoError(t, err)
	}
	_, err := interceptor(ctx1, nil, info, mockHandler)
	require.Error(t, err)

	resp, err := interceptor(peerContext("192.168.1.2:12345"), nil, info, mockHandler)
	require.NoError(t, err)
	assert.Equal(t, "success", resp)
}

func TestRateLimiter_XForwardedFor(t *testing.T) {
	interceptor, mr := setupInterceptor(t, ratelimit.Config{RequestsPerSecond: 5, BurstCapacity: 10, Enabled: true})
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-forwarded-for", "203.0.113.1"))
	info := &grpc.UnaryServerInfo{FullMethod: healthCheck}

	_, err := interceptor(ctx, nil, info, mockHandler)
	require.NoError(t, err)

	assert.True(t, mr.Exists("ratelimit:tb:"+healthCheck+":203.0.113.1"))
}

func TestRateLimiter_DifferentMethods(t *testing.T) {
	interceptor, _ := setupInterceptor(t, ratelimit.Config{RequestsPerSecond: 1, BurstCapacity: 2, Enabled: true})
	ctx := peerContext("127.0.0.1:12345")

	info1 := &grpc.UnaryServerInfo{FullMethod: healthCheck}
	for i := 0; i < 2; i++ {
		_, err := interceptor(ctx, nil, info1, mockHandler)
		require.NoError(t, err)
	}

	info2 := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/List"}
	resp, err := interceptor(ctx, nil, info2, mockHandler)
	require.NoError(t, err)
	assert.Equal(t, "success", resp)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	interceptor, mr := setupInterceptor(t, ratelimit.Config{RequestsPerSecond: 1, BurstCapacity: 1, Enabled: true})
	mr.Close()

	resp, err := interceptor(peerContext("127.0.0.1:12345"), nil, &grpc.UnaryServerInfo{FullMethod: healthCheck}, mockHandler)
	require.NoError(t, err)
	assert.Equal(t, "success", resp)
}
