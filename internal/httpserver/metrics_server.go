package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/vmkube-controller/internal/infra/shutdown"
)

// MetricsServer serves Prometheus metrics on a dedicated port.
type MetricsServer struct {
	logger     *slog.Logger
	port       string
	gatherer   prometheus.Gatherer
	server     *http.Server
	addr       atomic.Pointer[net.Addr]
	ready      chan struct{}
	inShutdown atomic.Bool
}

// NewMetricsServer creates a metrics server that renders gatherer on GET /metrics.
func NewMetricsServer(logger *slog.Logger, port string, gatherer prometheus.Gatherer) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	return &MetricsServer{
		logger:   logger,
		port:     port,
		gatherer: gatherer,
		ready:    make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

// Name returns the name of the metrics server component.
func (s *MetricsServer) Name() string {
	return "metrics-server"
}

// Ping returns nil when the server is ready to serve.
func (s *MetricsServer) Ping(ctx context.Context) error {
	return pingReady(ctx, s.ready, s.Name())
}

// Handler builds the metrics router.
func (s *MetricsServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{
		ErrorLog:      slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
		ErrorHandling: promhttp.ContinueOnError,
	}))

	return router
}

// Start binds the port and serves in a goroutine.
func (s *MetricsServer) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "metrics server is shutting down, skipping start")

		return nil
	}

	listener, err := listen(ctx, s.port)
	if err != nil {
		return fmt.Errorf("start metrics server: %w", err)
	}

	addr := listener.Addr()
	s.addr.Store(&addr)
	s.server = newHTTPServer(s.Handler())

	s.logger.InfoContext(ctx, "metrics server listening", "addr", addr.String())

	go serve(ctx, s.logger, s.server, listener, s.ready)

	return nil
}

// Addr returns the bound address, nil before Start.
func (s *MetricsServer) Addr() net.Addr {
	addr := s.addr.Load()
	if addr == nil {
		return nil
	}

	return *addr
}

// Ready returns a channel that is closed when the metrics server is ready.
func (s *MetricsServer) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the metrics server.
//
//nolint:dupl // mirrors Server.Shutdown for same lifecycle; dedup would abstract over *http.Server
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "metrics server is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "metrics server shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down metrics server")

	if s.server == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.ErrorContext(ctx, "error shutting down metrics server", "reason", err)

		return fmt.Errorf("metrics server shutdown: %w", err)
	}

	s.logger.InfoContext(ctx, "metrics server closed properly")

	return nil
}
