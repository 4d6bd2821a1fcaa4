// Package ratelimit implements a Redis-backed token bucket shared by the
// HTTP and gRPC transports.
package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// bucketTTLSeconds bounds how long an idle bucket is kept.
const bucketTTLSeconds = 60

// tokenBucket refills at ARGV[1] tokens per second up to ARGV[2] and takes
// ARGV[4] tokens at time ARGV[3]. Bucket state is {last_refill, tokens}.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local ttl = tonumber(ARGV[5])

local bucket = redis.call('HMGET', key, 'last_refill', 'tokens')
local last_refill = tonumber(bucket[1]) or now
local tokens = tonumber(bucket[2]) or capacity

local elapsed = math.max(0, now - last_refill)
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
if tokens >= requested then
	tokens = tokens - requested
	allowed = 1
end

redis.call('HSET', key, 'last_refill', now, 'tokens', tokens)
redis.call('EXPIRE', key, ttl)
return allowed
`)

// Config holds token bucket settings.
type Config struct {
	RequestsPerSecond float64
	BurstCapacity     int
	Enabled           bool
}

// Limiter takes tokens from per-key buckets stored in Redis.
type Limiter struct {
	client redis.UniversalClient
	config Config
	log    *zap.Logger
}

// New creates a Limiter.
func New(client redis.UniversalClient, config Config, log *zap.Logger) *Limiter {
	return &Limiter{client: client, config: config, log: log}
}

// Enabled reports whether requests should be checked at all.
func (l *Limiter) Enabled() bool {
	return l != nil && l.config.Enabled
}

// Allow takes one token from the bucket named key. The clock is read from
// Redis so that every instance refills buckets at the same pace.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	now, err := l.client.Time(ctx).Result()
	if err != nil {
		return false, fmt.Errorf("read redis time: %w", err)
	}

	allowed, err := tokenBucket.Run(ctx, l.client, []string{key},
		l.config.RequestsPerSecond,
		l.config.BurstCapacity,
		float64(now.UnixMicro())/1e6,
		1,
		bucketTTLSeconds,
	).Int64()
	if err != nil {
		return false, fmt.Errorf("run token bucket: %w", err)
	}

	if allowed == 0 {
		l.log.Debug("token bucket empty", zap.String("key", key))
	}
	return allowed == 1, nil
}
