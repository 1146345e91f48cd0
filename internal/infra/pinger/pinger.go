package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/vmkube-controller/internal/infra/shutdown"
)

const (
	// defaultPingTimeout is the default timeout for ping operations
	defaultPingTimeout = 1 * time.Second
)

type pingerInfo struct {
	name           string
	ping           func(ctx context.Context) error
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
	stats          *stats
}

// Service runs registered pingers at a fixed interval and keeps the outcome
// of each one for the readiness and liveness probes.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	recorder   Recorder
	pingers    map[string]*pingerInfo
	mu         sync.RWMutex
	ready      chan struct{}
	inShutdown atomic.Bool
	doneCh     chan struct{}
	started    atomic.Bool
	wg         sync.WaitGroup
}

// New creates a new pinger service with the specified interval.
// recorder may be nil.
func New(
	logger *slog.Logger,
	interval time.Duration,
	recorder Recorder,
) *Service {
	return &Service{
		logger:   logger,
		interval: interval,
		recorder: recorder,
		pingers:  make(map[string]*pingerInfo),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

// Name returns the name of the pinger service component
func (s *Service) Name() string {
	return "pinger-service"
}

// Register registers a pinger under its own name
func (s *Service) Register(pinger Pinger) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	info := &pingerInfo{
		name:           pinger.Name(),
		ping:           pinger.Ping,
		readyCritical:  true,
		healthCritical: true,
		timeout:        defaultPingTimeout,
		stats:          &stats{},
	}

	if rc, ok := pinger.(readyCriticalPinger); ok {
		info.readyCritical = rc.PingerReadyCritical()
	}

	if hc, ok := pinger.(healthCriticalPinger); ok {
		info.healthCritical = hc.PingerCritical()
	}

	if tp, ok := pinger.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		info.timeout = tp.PingerTimeout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pingers[info.name]; exists {
		return fmt.Errorf("register pinger %s: %w", info.name, ErrPingerAlreadyRegistered)
	}

	s.pingers[info.name] = info

	s.logger.Info("pinger registered",
		"name", info.name,
		"readyCritical", info.readyCritical,
		"healthCritical", info.healthCritical,
		"timeout", info.timeout,
	)

	return nil
}

// Start starts the pinger service in a goroutine
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready returns a channel that is closed after the first round of pings
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the pinger service
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "pinger service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down pinger service")

	if !s.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "pinger loop exited")
	}

	// in-flight pings may outlive the loop
	s.wg.Wait()

	return nil
}

// GetStats returns statistics for a specific pinger
func (s *Service) GetStats(name string) (*Statistics, error) {
	s.mu.RLock()
	info, exists := s.pingers[name]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("get stats: %w: %s", ErrPingerNotFound, name)
	}

	return info.stats.snapshot(info), nil
}

// GetAllStats returns a copy of the statistics of every pinger
func (s *Service) GetAllStats() map[string]*Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*Statistics, len(s.pingers))
	for name, info := range s.pingers {
		result[name] = info.stats.snapshot(info)
	}

	return result
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "pinger-run")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runPingers(ctx, logger)

	close(s.ready)

	for {
		if s.inShutdown.Load() {
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}

		select {
		case <-ticker.C:
			s.runPingers(ctx, logger)
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}

// runPingers executes all registered pingers in parallel and waits for them
func (s *Service) runPingers(ctx context.Context, logger *slog.Logger) {
	s.mu.RLock()
	pingers := maps.Clone(s.pingers)
	s.mu.RUnlock()

	var wg sync.WaitGroup

	for _, info := range pingers {
		if ctx.Err() != nil {
			return
		}

		wg.Add(1)
		s.wg.Add(1)

		go func() {
			defer wg.Done()
			defer s.wg.Done()

			s.pingOne(ctx, logger, info)
		}()
	}

	done := make(chan struct{})

	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
	case <-done:
	}
}

func (s *Service) pingOne(ctx context.Context, logger *slog.Logger, info *pingerInfo) {
	pingCtx, cancel := context.WithTimeout(ctx, info.timeout)
	defer cancel()

	start := time.Now()
	err := info.ping(pingCtx)
	latency := time.Since(start)

	info.stats.record(time.Now(), latency, err)

	if s.recorder != nil {
		s.recorder.ObservePing(info.name, latency, err)
	}

	if err != nil {
		logger.DebugContext(ctx, "pinger error",
			"name", info.name,
			"latency", latency,
			"reason", err,
		)

		return
	}

	logger.DebugContext(ctx, "pinger success",
		"name", info.name,
		"latency", latency,
	)
}
