package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/skillcoder/vmkube-controller/internal/adapters/inbound/informer"
	"github.com/skillcoder/vmkube-controller/internal/adapters/outbound/k8s"
	"github.com/skillcoder/vmkube-controller/internal/config"
	"github.com/skillcoder/vmkube-controller/internal/httpserver"
	"github.com/skillcoder/vmkube-controller/internal/infra/cronparser"
	"github.com/skillcoder/vmkube-controller/internal/infra/metrics"
	"github.com/skillcoder/vmkube-controller/internal/infra/shutdown"
	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
)

type App struct {
	logger      *slog.Logger
	cfg         *config.Config
	appState    appstater
	signals     signalHandler
	prober      kindProber
	probes      []kindProbe
	servers     []appServer
	controllers []appServer
	cache       appServer
}

// New creates a new application instance with all dependencies wired.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	telemetry *metrics.Metrics,
	gatherer prometheus.Gatherer,
) (*App, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(cfg.KubeMaster, cfg.KubeConfig)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	scheme, err := k8s.NewScheme()
	if err != nil {
		return nil, fmt.Errorf("build scheme: %w", err)
	}

	// reads go straight to the API server; the cache only feeds watches
	apiClient, err := client.New(kubeConfig, client.Options{Scheme: scheme})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	cache, err := informer.NewCache(logger, kubeConfig, scheme, cfg.Namespace)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	var scheduler controller.Scheduler

	if cfg.ResyncSchedule != "" {
		parser := cronparser.New()
		if err := parser.Validate(cfg.ResyncSchedule, cfg.ResyncTZ); err != nil {
			return nil, fmt.Errorf("validate resync schedule: %w", err)
		}

		scheduler = parser
	}

	events := newEventBroadcaster(logger, clientset, scheme)
	repo := k8s.New(logger, apiClient, metricsClientset, cfg.Namespace)

	services, probes, err := newControllers(controllerDeps{
		logger:    logger,
		cfg:       cfg,
		repo:      repo,
		recorder:  events.recorder,
		cache:     cache,
		scheme:    scheme,
		metrics:   telemetry,
		scheduler: scheduler,
	})
	if err != nil {
		return nil, fmt.Errorf("create controllers: %w", err)
	}

	a := &App{
		logger:   logger,
		cfg:      cfg,
		appState: appState,
		signals:  shutdown.New(logger, appState, cfg.TerminationFile),
		prober:   repo,
		probes:   probes,
		servers: []appServer{
			httpserver.NewMetricsServer(logger, cfg.MetricsPort, gatherer),
			httpserver.New(logger, appState, cfg.HTTPPort),
		},
		cache: cache,
	}

	for _, svc := range services {
		a.controllers = append(a.controllers, svc)
	}

	// shutdown runs in reverse: controllers drain first, events flush last
	shutdowners := []shutdown.Shutdowner{events}
	for _, srv := range a.servers {
		shutdowners = append(shutdowners, srv)
	}

	shutdowners = append(shutdowners, a.cache)
	for _, ctrl := range a.controllers {
		shutdowners = append(shutdowners, ctrl)
	}

	for _, s := range shutdowners {
		if err := appState.RegisterShutdowner(s); err != nil {
			return nil, fmt.Errorf("register shutdowner %s: %w", s.Name(), err)
		}
	}

	for _, p := range a.components() {
		if err := appState.RegisterPinger(p); err != nil {
			return nil, fmt.Errorf("register pinger %s: %w", p.Name(), err)
		}
	}

	return a, nil
}

func (a *App) components() []appServer {
	components := make([]appServer, 0, len(a.servers)+len(a.controllers)+1)
	components = append(components, a.servers...)
	components = append(components, a.cache)
	components = append(components, a.controllers...)

	return components
}

// Run starts the application and blocks until a termination signal arrives.
func (a *App) Run(originCtx context.Context) error {
	err := a.signals.CheckTermination(originCtx)
	if err != nil {
		return fmt.Errorf("check termination: %w", err)
	}

	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	if err := a.probeKinds(ctx); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "starting controller", "controllers", a.cfg.Controllers, "namespace", a.cfg.Namespace)

	startErr := a.start(ctx)
	if startErr == nil {
		startErr = a.waitRunning(ctx)
	}

	if startErr == nil {
		<-ctx.Done()
	}

	cancel()

	return errors.Join(startErr, a.shutdown(originCtx))
}

// probeKinds lists every enabled kind once so a missing CRD fails fast.
func (a *App) probeKinds(ctx context.Context) error {
	for _, probe := range a.probes {
		err := a.prober.ProbeKindQuery(ctx, probe.list)
		if err == nil {
			continue
		}

		a.logger.ErrorContext(ctx, "CRD is not queryable; is the CRD installed?",
			"kind", probe.kind,
			"reason", err,
			"hint", CRDInstallHint,
		)

		return fmt.Errorf("%w: %s: %w", ErrCRDNotQueryable, probe.kind, err)
	}

	return nil
}

// start brings the components up. Controllers register their informers
// before the cache starts so the cache starts them too.
func (a *App) start(ctx context.Context) error {
	var g errgroup.Group

	for _, srv := range a.servers {
		g.Go(func() error {
			if err := srv.Start(ctx); err != nil {
				return fmt.Errorf("start %s: %w", srv.Name(), err)
			}

			return nil
		})
	}

	for _, ctrl := range a.controllers {
		g.Go(func() error {
			if err := ctrl.Start(ctx); err != nil {
				return fmt.Errorf("start %s: %w", ctrl.Name(), err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := a.cache.Start(ctx); err != nil {
		return fmt.Errorf("start %s: %w", a.cache.Name(), err)
	}

	if err := a.appState.StartPingers(ctx); err != nil {
		return fmt.Errorf("start pingers: %w", err)
	}

	return nil
}

// waitRunning marks the application running once every component is ready.
// A termination signal during startup is not an error.
func (a *App) waitRunning(ctx context.Context) error {
	chans := []<-chan struct{}{a.appState.PingersReady()}
	for _, c := range a.components() {
		chans = append(chans, c.Ready())
	}

	<-allChannelsClose(ctx, a.logger, chans...)

	if ctx.Err() != nil {
		a.logger.InfoContext(ctx, "terminated during startup")

		return nil
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running: %w", err)
	}

	a.logger.InfoContext(ctx, "controller is running", "startup", a.appState.GetUptime().Round(time.Millisecond).String())

	return nil
}

func (a *App) shutdown(originCtx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(originCtx), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.InfoContext(ctx, "shutting down", "timeout", a.cfg.ShutdownTimeout)

	if err := a.appState.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// allChannelsClose returns a channel that closes once every input channel has
// closed, or as soon as ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for components",
					"pending", len(chans)-i,
					"reason", ctx.Err(),
				)

				return
			}
		}
	}()

	return out
}
