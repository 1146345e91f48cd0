package informer

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/rest"
	crcache "sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/skillcoder/vmkube-controller/internal/infra/shutdown"
	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
)

// Cache owns the shared informers every watch source registers on. Sources
// must register before Start so their informers start with the cache.
type Cache struct {
	logger     *slog.Logger
	cache      crcache.Cache
	ready      chan struct{}
	doneCh     chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
}

// NewCache builds an informer cache limited to namespace (all when empty).
// Pods are only cached when they carry the managed-by label.
func NewCache(logger *slog.Logger, cfg *rest.Config, scheme *runtime.Scheme, namespace string) (*Cache, error) {
	opts := crcache.Options{
		Scheme: scheme,
		ByObject: map[client.Object]crcache.ByObject{
			&corev1.Pod{}: {
				Label: labels.SelectorFromSet(labels.Set{
					controller.ManagedByLabelKey: controller.ManagedByLabelValue,
				}),
			},
		},
	}

	if namespace != "" {
		opts.DefaultNamespaces = map[string]crcache.Config{namespace: {}}
	}

	c, err := crcache.New(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create informer cache: %w", err)
	}

	return NewCacheFrom(logger, c), nil
}

// NewCacheFrom wraps an existing cache.
func NewCacheFrom(logger *slog.Logger, c crcache.Cache) *Cache {
	return &Cache{
		logger: logger,
		cache:  c,
		ready:  make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Cache)(nil)

// Name returns the name of the cache component
func (c *Cache) Name() string {
	return "informer-cache"
}

// Informers exposes the cache to watch sources.
func (c *Cache) Informers() crcache.Cache {
	return c.cache
}

// Start runs the informers until ctx is done. Ready closes once every
// registered informer has synced.
func (c *Cache) Start(ctx context.Context) error {
	if c.inShutdown.Load() {
		c.logger.InfoContext(ctx, "informer cache is shutting down, skipping start")

		return nil
	}

	if !c.started.CompareAndSwap(false, true) {
		return nil
	}

	go func() {
		defer close(c.doneCh)

		err := c.cache.Start(ctx)
		if err != nil {
			c.logger.ErrorContext(ctx, "informer cache stopped", "reason", err)

			return
		}

		c.logger.InfoContext(ctx, "informer cache stopped")
	}()

	go func() {
		if !c.cache.WaitForCacheSync(ctx) {
			c.logger.WarnContext(ctx, "informer cache did not sync", "reason", ctx.Err())

			return
		}

		close(c.ready)
		c.logger.InfoContext(ctx, "informer cache synced")
	}()

	return nil
}

// Ready returns a channel that is closed when the cache has synced
func (c *Cache) Ready() <-chan struct{} {
	return c.ready
}

func (c *Cache) Ping(ctx context.Context) error {
	select {
	case <-c.doneCh:
		return fmt.Errorf("informer cache: %w: stopped", ErrCacheNotSynced)
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ready:
		return nil
	default:
		return fmt.Errorf("informer cache: %w", ErrCacheNotSynced)
	}
}

// Shutdown waits for the informers to stop. They stop with the context passed to Start.
func (c *Cache) Shutdown(ctx context.Context) error {
	if !c.inShutdown.CompareAndSwap(false, true) {
		c.logger.ErrorContext(ctx, "informer cache is already shutting down, skipping shutdown")

		return nil
	}

	if !c.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before informer cache stopped: %w", ctx.Err())
	case <-c.doneCh:
		c.logger.InfoContext(ctx, "informer cache shut downed")
	}

	return nil
}
