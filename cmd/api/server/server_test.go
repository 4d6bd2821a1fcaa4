package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"user-todo-service/cmd/api/di"
	"user-todo-service/internal/config"
)

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return strconv.Itoa(lis.Addr().(*net.TCPAddr).Port)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.ConnectionString = filepath.Join(t.TempDir(), "app.db")
	cfg.App.HTTPPort = freePort(t)
	cfg.App.GRPCPort = freePort(t)
	cfg.App.HealthCheckInterval = 1
	cfg.App.ShutdownTimeoutSeconds = 2

	l := zaptest.NewLogger(t)
	c, err := di.NewContainer(context.Background(), cfg, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	srv := New(cfg, l, c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	base := fmt.Sprintf("http://127.0.0.1:%s", cfg.App.HTTPPort)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "Hello World!"
	}, 5*time.Second, 50*time.Millisecond)

	conn, err := grpc.NewClient("127.0.0.1:"+cfg.App.GRPCPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	assert.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: cfg.Logger.ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ServeGRPCAfterStopIsClean(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.ConnectionString = filepath.Join(t.TempDir(), "app.db")
	cfg.App.HTTPPort = freePort(t)
	cfg.App.GRPCPort = freePort(t)
	cfg.App.ShutdownTimeoutSeconds = 1

	l := zaptest.NewLogger(t)
	c, err := di.NewContainer(context.Background(), cfg, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	srv := New(cfg, l, c)
	require.NotNil(t, srv.GRPC)

	require.NoError(t, srv.shutdown())
	assert.NoError(t, srv.serveGRPC(context.Background()))
}

func TestServer_RunReportsOnlyListenerFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.ConnectionString = filepath.Join(t.TempDir(), "app.db")
	cfg.App.HTTPPort = strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)
	cfg.App.GRPCPort = freePort(t)
	cfg.App.ShutdownTimeoutSeconds = 1

	l := zaptest.NewLogger(t)
	c, err := di.NewContainer(context.Background(), cfg, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	err = New(cfg, l, c).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server")
	assert.NotContains(t, err.Error(), "has been stopped")
}
