package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"user-todo-service/cmd/api/di"
	grpcadapter "user-todo-service/internal/adapter/grpc"
	"user-todo-service/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
	GRPC   *grpc.Server // nil when gRPC is disabled
	Health *grpcadapter.HealthChecker
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	s := &Server{
		Config: cfg,
		Logger: l,
		HTTP:   SetupGinServer(c.UserHandler, c.TodoHandler, c.RateLimiter, httpAddress(cfg), l),
		Health: c.Health,
	}
	if cfg.App.GRPCEnabled {
		s.GRPC = SetupGRPC(c.Health, c.RateLimiter, l)
	}
	return s
}

// Run serves HTTP and gRPC until ctx is done or one of them fails, then
// shuts both down.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(s.serveHTTP)

	if s.GRPC != nil {
		g.Go(func() error { return s.serveGRPC(gctx) })
		g.Go(func() error { return s.Health.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) serveHTTP() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server: %w", err)
	}
	return nil
}

func (s *Server) serveGRPC(ctx context.Context) error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(ctx, "tcp", grpcAddress(s.Config))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.Logger.Info("gRPC server running", zap.String("address", lis.Addr().String()))
	// Stopped before Serve was reached: the other listener failed first.
	if err := s.GRPC.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server: %w", err)
	}
	return nil
}

// shutdown stops both listeners within SHUTDOWN_TIMEOUT_SECONDS.
func (s *Server) shutdown() error {
	timeout := time.Duration(s.Config.App.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.Logger.Info("starting graceful shutdown", zap.Duration("timeout", timeout))

	var errs []error

	s.Logger.Info("shutting down HTTP server...")
	if err := s.HTTP.Shutdown(ctx); err != nil {
		s.Logger.Error("failed to shutdown HTTP server", zap.Error(err))
		errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
	}

	if s.GRPC != nil {
		s.Logger.Info("shutting down gRPC server...")
		stopped := make(chan struct{})
		go func() {
			s.GRPC.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-ctx.Done():
			s.Logger.Warn("gRPC graceful stop timed out, forcing stop")
			s.GRPC.Stop()
		}
	}

	return errors.Join(errs...)
}

func grpcAddress(cfg *config.Config) string {
	return ":" + cfg.App.GRPCPort
}

func httpAddress(cfg *config.Config) string {
	return ":" + cfg.App.HTTPPort
}
