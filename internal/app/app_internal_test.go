package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/skillcoder/vmkube-controller/internal/config"
	"github.com/skillcoder/vmkube-controller/internal/infra/appstate"
	"github.com/skillcoder/vmkube-controller/internal/infra/pinger"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

type allChannelsCloseCase struct {
	name                         string
	giveNumChannels              int
	giveContextCancelBeforeClose bool
}

func TestAllChannelsClose(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []allChannelsCloseCase{
		{
			name:            "zero channels closes immediately",
			giveNumChannels: 0,
		},
		{
			name:            "one channel closes when it closes",
			giveNumChannels: 1,
		},
		{
			name:            "two channels close when both close",
			giveNumChannels: 2,
		},
		{
			name:                         "context cancelled closes without channels",
			giveNumChannels:              2,
			giveContextCancelBeforeClose: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()

			if tt.giveContextCancelBeforeClose {
				var cancel context.CancelFunc

				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			chans := make([]<-chan struct{}, 0, tt.giveNumChannels)
			readyChans := make([]chan struct{}, 0, tt.giveNumChannels)

			for range tt.giveNumChannels {
				ch := make(chan struct{})

				readyChans = append(readyChans, ch)
				chans = append(chans, ch)
			}

			out := allChannelsClose(ctx, logger, chans...)

			if tt.giveNumChannels == 0 || tt.giveContextCancelBeforeClose {
				select {
				case <-out:
				case <-time.After(100 * time.Millisecond):
					t.Fatal("expected out channel to close immediately")
				}

				return
			}

			select {
			case <-out:
				t.Fatal("out closed before input channels")
			case <-time.After(20 * time.Millisecond):
			}

			for _, ch := range readyChans {
				close(ch)
			}

			select {
			case <-out:
			case <-time.After(500 * time.Millisecond):
				t.Fatal("expected out channel to close after all input channels closed")
			}
		})
	}
}

type event struct {
	mu  sync.Mutex
	log []string
}

func (e *event) add(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.log = append(e.log, s)
}

func (e *event) snapshot() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.log...)
}

type fakeComponent struct {
	name     string
	events   *event
	startErr error
	ready    chan struct{}
	once     sync.Once
}

func newFakeComponent(name string, events *event) *fakeComponent {
	return &fakeComponent{name: name, events: events, ready: make(chan struct{})}
}

func (c *fakeComponent) Name() string { return c.name }

func (c *fakeComponent) Ping(context.Context) error { return nil }

func (c *fakeComponent) Ready() <-chan struct{} { return c.ready }

func (c *fakeComponent) Start(context.Context) error {
	c.events.add("start " + c.name)

	if c.startErr != nil {
		return c.startErr
	}

	c.once.Do(func() { close(c.ready) })

	return nil
}

func (c *fakeComponent) Shutdown(context.Context) error {
	c.events.add("shutdown " + c.name)

	return nil
}

type fakeSignals struct {
	terminationErr error
}

func (s fakeSignals) HandleSignals(ctx context.Context, _ func()) {
	<-ctx.Done()
}

func (s fakeSignals) CheckTermination(context.Context) error {
	return s.terminationErr
}

type fakeProber struct {
	err error
}

func (p fakeProber) ProbeKindQuery(context.Context, client.ObjectList) error {
	return p.err
}

func newTestApp(t *testing.T, events *event, prober kindProber) (*App, *appstate.AppState) {
	t.Helper()

	logger := slog.Default()
	appState := appstate.New(
		logger,
		time.Now(),
		filepath.Join(t.TempDir(), "terminating"),
		make(chan os.Signal, 1),
		pinger.New(logger, 10*time.Millisecond, nil),
	)

	a := &App{
		logger:      logger,
		cfg:         &config.Config{ShutdownTimeout: time.Second, Controllers: []string{config.ControllerPokemon}},
		appState:    appState,
		signals:     fakeSignals{},
		prober:      prober,
		probes:      []kindProbe{{kind: pokemonv1.PokemonKind, list: &pokemonv1.PokemonList{}}},
		servers:     []appServer{newFakeComponent("http-server", events)},
		controllers: []appServer{newFakeComponent("pokemon-controller", events)},
		cache:       newFakeComponent("informer-cache", events),
	}

	for _, c := range []appServer{a.servers[0], a.cache, a.controllers[0]} {
		require.NoError(t, appState.RegisterShutdowner(c))
		require.NoError(t, appState.RegisterPinger(c))
	}

	return a, appState
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	events := &event{}
	a, appState := newTestApp(t, events, fakeProber{})

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)

	go func() { errCh <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		return appState.GetState() == appstate.StateRunning
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, appState.IsReady, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
	}

	require.Equal(t, appstate.StateTerminated, appState.GetState())

	got := events.snapshot()
	require.Len(t, got, 6)
	require.ElementsMatch(t, []string{"start http-server", "start pokemon-controller"}, got[:2])
	require.Equal(t, []string{
		"start informer-cache",
		"shutdown pokemon-controller",
		"shutdown informer-cache",
		"shutdown http-server",
	}, got[2:])
}

func TestApp_RunProbeFailure(t *testing.T) {
	t.Parallel()

	events := &event{}
	errNotFound := errors.New("the server could not find the requested resource")
	a, appState := newTestApp(t, events, fakeProber{err: errNotFound})

	err := a.Run(t.Context())
	require.ErrorIs(t, err, ErrCRDNotQueryable)
	require.ErrorIs(t, err, errNotFound)
	require.ErrorContains(t, err, pokemonv1.PokemonKind)
	require.Empty(t, events.snapshot())
	require.Equal(t, appstate.StateStarting, appState.GetState())
}

func TestApp_RunStartFailure(t *testing.T) {
	t.Parallel()

	events := &event{}
	a, appState := newTestApp(t, events, fakeProber{})

	errBind := errors.New("address already in use")
	a.servers[0].(*fakeComponent).startErr = errBind

	err := a.Run(t.Context())
	require.ErrorIs(t, err, errBind)
	require.Equal(t, appstate.StateTerminated, appState.GetState())
	require.Contains(t, events.snapshot(), "shutdown pokemon-controller")
	require.NotContains(t, events.snapshot(), "start informer-cache")
}

func TestApp_RunTerminationFile(t *testing.T) {
	t.Parallel()

	errTerminating := errors.New("termination file found")
	a, _ := newTestApp(t, &event{}, fakeProber{})
	a.signals = fakeSignals{terminationErr: errTerminating}

	require.ErrorIs(t, a.Run(t.Context()), errTerminating)
}
