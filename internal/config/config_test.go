package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/vmkube-controller/internal/config"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr error
	wantCfg *config.Config
}

func assertConfigFields(t *testing.T, got, want *config.Config) {
	t.Helper()

	if want == nil {
		return
	}

	if want.HTTPPort != "" {
		require.Equal(t, want.HTTPPort, got.HTTPPort)
	}

	if want.MetricsPort != "" {
		require.Equal(t, want.MetricsPort, got.MetricsPort)
	}

	if want.LogLevel != "" {
		require.Equal(t, want.LogLevel, got.LogLevel)
	}

	if want.LogFormat != "" {
		require.Equal(t, want.LogFormat, got.LogFormat)
	}

	if want.KubeConfig != "" {
		require.Equal(t, want.KubeConfig, got.KubeConfig)
	}

	if want.Namespace != "" {
		require.Equal(t, want.Namespace, got.Namespace)
	}

	if want.Controllers != nil {
		require.Equal(t, want.Controllers, got.Controllers)
	}

	if want.Workers != 0 {
		require.Equal(t, want.Workers, got.Workers)
	}

	if want.RequeueInterval != 0 {
		require.Equal(t, want.RequeueInterval, got.RequeueInterval)
	}

	if want.ErrorRequeueInterval != 0 {
		require.Equal(t, want.ErrorRequeueInterval, got.ErrorRequeueInterval)
	}

	if want.ReconcileTimeout != 0 {
		require.Equal(t, want.ReconcileTimeout, got.ReconcileTimeout)
	}

	if want.PingerInterval != 0 {
		require.Equal(t, want.PingerInterval, got.PingerInterval)
	}

	if want.ShutdownTimeout != 0 {
		require.Equal(t, want.ShutdownTimeout, got.ShutdownTimeout)
	}

	if want.ResyncSchedule != "" {
		require.Equal(t, want.ResyncSchedule, got.ResyncSchedule)
	}

	if want.TerminationFile != "" {
		require.Equal(t, want.TerminationFile, got.TerminationFile)
	}
}

// Tests in this file use t.Setenv and therefore cannot run in parallel.
func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name:    "all defaults",
			giveEnv: map[string]string{},
			wantCfg: &config.Config{
				LogLevel:             "info",
				LogFormat:            "json",
				HTTPPort:             "8080",
				MetricsPort:          "9090",
				Controllers:          []string{config.ControllerPokemon, config.ControllerVirtualMachine},
				Workers:              4,
				RequeueInterval:      300 * time.Second,
				ErrorRequeueInterval: 300 * time.Second,
				ReconcileTimeout:     30 * time.Second,
				PingerInterval:       10 * time.Second,
				ShutdownTimeout:      10 * time.Second,
				TerminationFile:      "/mnt/signal/terminating",
			},
		},
		{
			name: "kubeconfig falls back to KUBECONFIG",
			giveEnv: map[string]string{
				"KUBECONFIG": "/home/dev/.kube/config",
			},
			wantCfg: &config.Config{KubeConfig: "/home/dev/.kube/config"},
		},
		{
			name: "prefixed kubeconfig wins",
			giveEnv: map[string]string{
				"KUBECONFIG":        "/home/dev/.kube/config",
				"VMKUBE_KUBECONFIG": "/etc/vmkube/kubeconfig",
			},
			wantCfg: &config.Config{KubeConfig: "/etc/vmkube/kubeconfig"},
		},
		{
			name: "overrides with explicit units",
			giveEnv: map[string]string{
				"VMKUBE_HTTP_PORT":              "8081",
				"VMKUBE_NAMESPACE":              "sandboxes",
				"VMKUBE_WORKERS":                "8",
				"VMKUBE_REQUEUE_INTERVAL":       "5m",
				"VMKUBE_ERROR_REQUEUE_INTERVAL": "30s",
				"VMKUBE_RECONCILE_TIMEOUT":      "1m",
				"VMKUBE_RESYNC_SCHEDULE":        " 0 * * * * ",
			},
			wantCfg: &config.Config{
				HTTPPort:             "8081",
				Namespace:            "sandboxes",
				Workers:              8,
				RequeueInterval:      5 * time.Minute,
				ErrorRequeueInterval: 30 * time.Second,
				ReconcileTimeout:     time.Minute,
				ResyncSchedule:       "0 * * * *",
			},
		},
		{
			name: "controllers are normalized and deduplicated",
			giveEnv: map[string]string{
				"VMKUBE_CONTROLLERS": " VirtualMachine,virtualmachine,",
			},
			wantCfg: &config.Config{Controllers: []string{config.ControllerVirtualMachine}},
		},
		{
			name:    "unknown controller",
			giveEnv: map[string]string{"VMKUBE_CONTROLLERS": "pokemon,deployment"},
			wantErr: config.ErrUnknownController,
		},
		{
			name:    "no controllers",
			giveEnv: map[string]string{"VMKUBE_CONTROLLERS": " , "},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "invalid duration",
			giveEnv: map[string]string{"VMKUBE_REQUEUE_INTERVAL": "x"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "duration below minimum",
			giveEnv: map[string]string{"VMKUBE_REQUEUE_INTERVAL": "1s"},
			wantErr: config.ErrValueOutOfRange,
		},
		{
			name:    "workers out of range",
			giveEnv: map[string]string{"VMKUBE_WORKERS": "0"},
			wantErr: config.ErrValueOutOfRange,
		},
		{
			name:    "workers not a number",
			giveEnv: map[string]string{"VMKUBE_WORKERS": "four"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "unknown timezone",
			giveEnv: map[string]string{"VMKUBE_RESYNC_TZ": "Mars/Olympus_Mons"},
			wantErr: config.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUBECONFIG", "")
			t.Setenv("VMKUBE_KUBECONFIG", "")

			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			assertConfigFields(t, got, tt.wantCfg)
		})
	}
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Controllers: []string{config.ControllerPokemon}}

	require.True(t, cfg.Enabled(config.ControllerPokemon))
	require.False(t, cfg.Enabled(config.ControllerVirtualMachine))
}
