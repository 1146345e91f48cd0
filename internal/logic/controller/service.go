package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/workqueue"
)

// Options tune one controller loop.
type Options struct {
	Workers          int
	ReconcileTimeout time.Duration
	// RequeueInterval bounds how long a non-empty queue may go without progress
	// before Ping reports the loop as stale.
	RequeueInterval time.Duration
	ResyncSchedule  string
	ResyncTZ        string
}

// Service is the watch dispatcher for one kind. Keys coming from the source
// are fed into a work queue; the queue never hands the same key to two
// workers at once, so reconciles of one object are serialized while different
// objects proceed in parallel.
type Service struct {
	logger               *slog.Logger
	reconciler           Reconciler
	errorPolicy          ErrorPolicy
	source               Source
	metrics              Metrics
	scheduler            Scheduler
	opts                 Options
	queue                workqueue.TypedRateLimitingInterface[types.NamespacedName]
	ready                chan struct{}
	doneCh               chan struct{}
	started              atomic.Bool
	inShutdown           atomic.Bool
	mu                   sync.RWMutex
	lastReconcileEndTime time.Time
}

// New creates a new controller service.
// scheduler may be nil when no resync schedule is configured.
func New(
	logger *slog.Logger,
	reconciler Reconciler,
	errorPolicy ErrorPolicy,
	source Source,
	metrics Metrics,
	scheduler Scheduler,
	opts Options,
) *Service {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	if opts.ReconcileTimeout <= 0 {
		opts.ReconcileTimeout = DefaultReconcileTimeout
	}

	if opts.RequeueInterval <= 0 {
		opts.RequeueInterval = DefaultRequeueInterval
	}

	kind := reconciler.Kind()

	return &Service{
		logger:      logger.With("controller", kind),
		reconciler:  reconciler,
		errorPolicy: errorPolicy,
		source:      source,
		metrics:     metrics,
		scheduler:   scheduler,
		opts:        opts,
		queue: workqueue.NewTypedRateLimitingQueueWithConfig(
			workqueue.DefaultTypedControllerRateLimiter[types.NamespacedName](),
			workqueue.TypedRateLimitingQueueConfig[types.NamespacedName]{
				Name: strings.ToLower(kind),
			},
		),
		ready:  make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "controller service is shutting down, skipping start")

		return nil
	}

	err := s.source.Register(ctx, s.Enqueue)
	if err != nil {
		return fmt.Errorf("register %s source: %w", s.reconciler.Kind(), err)
	}

	s.started.Store(true)

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the controller component
func (s *Service) Name() string {
	return strings.ToLower(s.reconciler.Kind()) + "-controller"
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		if s.queue.Len() == 0 {
			return nil
		}

		lastReconcileAge := s.getLastReconcileAge()
		if lastReconcileAge > staleFactor*s.opts.RequeueInterval {
			return fmt.Errorf("last reconcile was too long ago: %s", lastReconcileAge.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("%s controller is not ready", s.reconciler.Kind())
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "controller service is already shutting down, skipping shutdown")

		return nil // Already shutting down
	}

	defer func() {
		s.logger.InfoContext(ctx, "controller service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down controller service")

	if !s.started.Load() {
		s.queue.ShutDown()

		return nil
	}

	// RunCommand drains in-flight reconciles once its context is cancelled.
	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before controller loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "controller loop exited")
	}

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Enqueue schedules a reconcile for key. Duplicate keys collapse while queued.
func (s *Service) Enqueue(key types.NamespacedName) {
	s.queue.Add(key)
}

// RunCommand starts the workers and blocks until ctx is cancelled and every
// in-flight reconcile has finished.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("workers", s.opts.Workers)

	s.setLastReconcileEndTime()

	var wg sync.WaitGroup

	for range s.opts.Workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for s.processNextItem(ctx) {
			}
		}()
	}

	if s.opts.ResyncSchedule != "" && s.scheduler != nil {
		wg.Add(1)

		go func() {
			defer wg.Done()

			s.runResync(ctx, logger)
		}()
	}

	close(s.ready)

	logger.InfoContext(ctx, "controller loop started")

	<-ctx.Done()

	logger.Info("draining work queue", "pending", s.queue.Len())

	s.queue.ShutDownWithDrain()
	// stops the delaying queue's timer goroutine
	s.queue.ShutDown()

	wg.Wait()

	logger.Info("terminating controller loop")
}

func (s *Service) processNextItem(ctx context.Context) bool {
	key, shutdown := s.queue.Get()
	if shutdown {
		return false
	}

	defer s.queue.Done(key)

	// Queued but not yet started keys are dropped once shutdown begins.
	if ctx.Err() != nil {
		return true
	}

	s.ReconcileCommand(ctx, key)

	return true
}

// ReconcileCommand reconciles a single key and schedules its next visit.
func (s *Service) ReconcileCommand(ctx context.Context, key types.NamespacedName) {
	kind := s.reconciler.Kind()
	logger := s.logger.With(
		"namespace", key.Namespace,
		"name", key.Name,
		"traceID", uuid.NewString(),
	)

	// A started reconcile runs to completion even if shutdown begins meanwhile.
	reconcileCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ReconcileTimeout)
	defer cancel()

	reconcileCtx = WithLogger(reconcileCtx, logger)

	logger.DebugContext(reconcileCtx, "reconciling")

	start := time.Now()
	action, err := s.safeReconcile(reconcileCtx, key)

	s.metrics.ObserveReconcile(kind, time.Since(start))

	if err != nil {
		s.metrics.ReconcileFailure(kind, key.Namespace, key.Name)
		action = s.errorPolicy.Next(key, err)

		logger.WarnContext(reconcileCtx, "reconcile failed",
			"reason", err,
			"requeueAfter", action.RequeueAfter.String(),
		)
	}

	s.schedule(key, action)
	s.setLastReconcileEndTime()
}

func (s *Service) safeReconcile(ctx context.Context, key types.NamespacedName) (action Action, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrReconcilePanic, r)
		}
	}()

	return s.reconciler.Reconcile(ctx, key)
}

func (s *Service) schedule(key types.NamespacedName, action Action) {
	switch {
	case action.Immediate:
		s.queue.AddRateLimited(key)
	case action.RequeueAfter > 0:
		s.queue.Forget(key)
		s.queue.AddAfter(key, action.RequeueAfter)
	default:
		s.queue.Forget(key)
	}
}

func (s *Service) runResync(ctx context.Context, logger *slog.Logger) {
	logger = logger.With("schedule", s.opts.ResyncSchedule)

	for {
		next, err := s.scheduler.NextAfter(s.opts.ResyncSchedule, s.opts.ResyncTZ, time.Now())
		if err != nil {
			logger.ErrorContext(ctx, "resync disabled", "reason", err)

			return
		}

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}

		keys, err := s.source.ListKeys(ctx)
		if err != nil {
			logger.WarnContext(ctx, "resync list failed", "reason", err)

			continue
		}

		for _, key := range keys {
			s.queue.Add(key)
		}

		logger.DebugContext(ctx, "resync enqueued", "count", len(keys))
	}
}

func (s *Service) getLastReconcileAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.lastReconcileEndTime)
}

func (s *Service) setLastReconcileEndTime() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastReconcileEndTime = time.Now()
}
