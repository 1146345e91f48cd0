package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/vmkube-controller/internal/infra/appstate"
	"github.com/skillcoder/vmkube-controller/internal/infra/pinger"
)

type stubPinger struct {
	name string
	err  error
}

func (p stubPinger) Name() string { return p.name }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubShutdowner struct {
	name  string
	order *[]string
}

func (s stubShutdowner) Name() string { return s.name }

func (s stubShutdowner) Shutdown(context.Context) error {
	*s.order = append(*s.order, s.name)

	return nil
}

func newAppState(t *testing.T, pingers *pinger.Service) *appstate.AppState {
	t.Helper()

	if pingers == nil {
		pingers = pinger.New(slog.Default(), time.Second, nil)
	}

	terminationFile := filepath.Join(t.TempDir(), "terminating")

	return appstate.New(slog.Default(), time.Now(), terminationFile, make(chan os.Signal, 1), pingers)
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveSteps []func(*appstate.AppState, context.Context) error
		wantErr   error
		wantState appstate.State
	}{
		{
			name:      "init to starting",
			giveSteps: []func(*appstate.AppState, context.Context) error{(*appstate.AppState).SetStarting},
			wantState: appstate.StateStarting,
		},
		{
			name: "starting to running",
			giveSteps: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).SetRunning,
			},
			wantState: appstate.StateRunning,
		},
		{
			name: "running to terminating",
			giveSteps: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).SetRunning,
				(*appstate.AppState).SetTerminating,
			},
			wantState: appstate.StateTerminating,
		},
		{
			name:      "invalid: init to running",
			giveSteps: []func(*appstate.AppState, context.Context) error{(*appstate.AppState).SetRunning},
			wantErr:   appstate.ErrInvalidStateTransition,
			wantState: appstate.StateInit,
		},
		{
			name: "invalid: terminated cannot change",
			giveSteps: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).SetRunning,
				(*appstate.AppState).Shutdown,
				(*appstate.AppState).SetStarting,
			},
			wantErr:   appstate.ErrInvalidStateTransition,
			wantState: appstate.StateTerminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newAppState(t, nil)

			var err error
			for _, step := range tt.giveSteps {
				err = step(s, t.Context())
			}

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.wantState, s.GetState())
		})
	}
}

func TestAppState_QueryMethods(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	s := newAppState(t, nil)

	require.Equal(t, appstate.StateInit, s.GetState())
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())
	require.Nil(t, s.GetReadyAt())

	require.NoError(t, s.SetStarting(ctx))
	require.False(t, s.IsReady())

	require.NoError(t, s.SetRunning(ctx))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())
	require.NotNil(t, s.GetReadyAt())

	time.Sleep(10 * time.Millisecond)
	require.Greater(t, s.GetUptime(), 10*time.Millisecond-time.Millisecond)
	require.False(t, s.GetStartTime().IsZero())
}

func TestAppState_ProbesFollowPingers(t *testing.T) {
	t.Parallel()

	pingers := pinger.New(slog.Default(), 10*time.Millisecond, nil)
	s := newAppState(t, pingers)

	require.NoError(t, s.RegisterPinger(stubPinger{name: "cache"}))
	require.NoError(t, s.RegisterPinger(stubPinger{name: "pokemon-controller", err: errors.New("not ready")}))

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)

	require.NoError(t, pingers.Start(ctx))
	<-pingers.Ready()

	require.NoError(t, s.SetStarting(ctx))
	require.NoError(t, s.SetRunning(ctx))

	require.False(t, s.IsReady())
	require.False(t, s.IsHealthy())
	require.Len(t, s.GetAllStats(), 2)
	require.True(t, s.GetAllStats()["cache"].IsReady)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	s := newAppState(t, nil)

	var order []string

	require.NoError(t, s.RegisterShutdowner(stubShutdowner{name: "http-server", order: &order}))
	require.NoError(t, s.RegisterShutdowner(stubShutdowner{name: "cache", order: &order}))
	require.ErrorIs(t, s.RegisterShutdowner(nil), appstate.ErrNilShutdowner)

	require.NoError(t, s.SetStarting(ctx))
	require.NoError(t, s.SetRunning(ctx))

	require.NoError(t, s.Shutdown(ctx))
	require.Equal(t, appstate.StateTerminated, s.GetState())
	require.Equal(t, []string{"cache", "http-server"}, order)

	// a terminated state rejects a second shutdown
	require.ErrorIs(t, s.Shutdown(ctx), appstate.ErrAlreadyTerminated)
}
