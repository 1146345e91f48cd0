package httpserver_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/vmkube-controller/internal/httpserver"
	"github.com/skillcoder/vmkube-controller/internal/infra/appstate"
	"github.com/skillcoder/vmkube-controller/internal/infra/pinger"
)

func newAppState(t *testing.T, running bool) *appstate.AppState {
	t.Helper()

	logger := slog.Default()
	appState := appstate.New(
		logger,
		time.Now(),
		filepath.Join(t.TempDir(), "terminating"),
		make(chan os.Signal, 1),
		pinger.New(logger, time.Second, nil),
	)

	if running {
		require.NoError(t, appState.SetStarting(t.Context()))
		require.NoError(t, appState.SetRunning(t.Context()))
	}

	return appState
}

func TestServer_Name(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(slog.Default(), newAppState(t, false), "")

	require.Equal(t, "http-server", srv.Name())
	require.Nil(t, srv.Addr())
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		giveRunning bool
		givePath    string
		wantCode    int
		wantBody    string
	}{
		{name: "health when running", giveRunning: true, givePath: "/health", wantCode: http.StatusOK, wantBody: `{"healthy":true}`},
		{name: "health when starting", givePath: "/health", wantCode: http.StatusServiceUnavailable, wantBody: `{"healthy":false}`},
		{name: "healthz", giveRunning: true, givePath: "/-/healthz", wantCode: http.StatusOK},
		{name: "readyz not ready", givePath: "/-/readyz", wantCode: http.StatusServiceUnavailable},
		{name: "status", givePath: "/-/status", wantCode: http.StatusOK},
		{name: "unknown path", givePath: "/nope", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httpserver.New(slog.Default(), newAppState(t, tt.giveRunning), "")

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.givePath, http.NoBody))

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				require.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestServer_StartPingShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(slog.Default(), newAppState(t, true), "0")

	require.Error(t, srv.Ping(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Start(ctx))

	select {
	case <-srv.Ready():
	case <-time.After(time.Second):
		t.Fatal("server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))

	body := get(t, localURL(srv.Addr(), "/health"))
	require.JSONEq(t, `{"healthy":true}`, body)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
	require.NoError(t, srv.Shutdown(shutdownCtx))
}

func TestMetricsServer(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "vmkube_test_total", Help: "test counter"})
	registry.MustRegister(counter)
	counter.Add(3)

	srv := httpserver.NewMetricsServer(slog.Default(), "0", registry)
	require.Equal(t, "metrics-server", srv.Name())

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Start(ctx))
	<-srv.Ready()
	require.NoError(t, srv.Ping(t.Context()))

	body := get(t, localURL(srv.Addr(), "/metrics"))
	require.Contains(t, body, "vmkube_test_total 3")
	require.NotContains(t, body, "go_goroutines")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
}

func localURL(addr net.Addr, path string) string {
	return "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(addr.(*net.TCPAddr).Port)) + path
}

func get(t *testing.T, url string) string {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, url, http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}
