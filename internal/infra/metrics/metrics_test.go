package metrics_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/vmkube-controller/internal/infra/metrics"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	m.ObserveReconcile("VirtualMachine", 120*time.Millisecond)
	m.ObserveReconcile("VirtualMachine", 80*time.Millisecond)
	m.ObserveReconcile("Pokemon", 10*time.Millisecond)
	m.ReconcileFailure("VirtualMachine", "default", "vm-a")

	expected := `
# HELP vmkube_reconciliations_total Total number of reconciliations.
# TYPE vmkube_reconciliations_total counter
vmkube_reconciliations_total{kind="Pokemon"} 1
vmkube_reconciliations_total{kind="VirtualMachine"} 2
# HELP vmkube_reconcile_failures_total Total number of failed reconciliations by object.
# TYPE vmkube_reconcile_failures_total counter
vmkube_reconcile_failures_total{kind="VirtualMachine",name="vm-a",namespace="default"} 1
`

	require.NoError(t, testutil.GatherAndCompare(
		registry,
		strings.NewReader(expected),
		"vmkube_reconciliations_total",
		"vmkube_reconcile_failures_total",
	))

	count, err := testutil.GatherAndCount(registry, "vmkube_reconcile_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestMetrics_ObservePing(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	m.ObservePing("cache", time.Millisecond, nil)
	m.ObservePing("pokemon-controller", 2*time.Millisecond, errors.New("not ready"))

	expected := `
# HELP vmkube_component_up Whether the last ping of a component succeeded.
# TYPE vmkube_component_up gauge
vmkube_component_up{component="cache"} 1
vmkube_component_up{component="pokemon-controller"} 0
`

	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "vmkube_component_up"))

	count, err := testutil.GatherAndCount(registry, "vmkube_ping_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNew_IsolatedRegistries(t *testing.T) {
	t.Parallel()

	// registering twice on separate registries must not panic
	require.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	families, err := metrics.NewRegistry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}
