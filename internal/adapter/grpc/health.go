package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger reports whether the store answers. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthChecker publishes store reachability through the standard
// grpc.health.v1 service, for the whole server ("") and for service.
type HealthChecker struct {
	server   *health.Server
	pinger   Pinger
	service  string
	interval time.Duration
	log      *zap.Logger
}

// NewHealthChecker creates a checker that reports NOT_SERVING until the
// first successful ping.
func NewHealthChecker(p Pinger, service string, interval time.Duration, log *zap.Logger) *HealthChecker {
	h := &HealthChecker{
		server:   health.NewServer(),
		pinger:   p,
		service:  service,
		interval: interval,
		log:      log,
	}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register exposes the health service on s.
func (h *HealthChecker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// Probe pings the store once and publishes the result.
func (h *HealthChecker) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(ctx); err != nil {
		h.log.Warn("store ping failed", zap.Error(err))
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.set(st)
	return st
}

// Run probes every interval until ctx is done, then marks every service
// NOT_SERVING so that watchers see the shutdown.
func (h *HealthChecker) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return nil
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

func (h *HealthChecker) set(st healthpb.HealthCheckResponse_ServingStatus) {
	h.server.SetServingStatus("", st)
	h.server.SetServingStatus(h.service, st)
}
