package config

import "time"

// Env key constants. All controller configuration env vars use VMKUBE_ prefix;
// duration values support explicit units (e.g. 5m, 40s, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "VMKUBE_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "VMKUBE_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "VMKUBE_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "VMKUBE_LOG_FORMAT"

// Port for health/readiness HTTP server.
const envKeyHTTPPort = "VMKUBE_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "VMKUBE_METRICS_PORT"

// Namespace to watch; empty watches all namespaces.
const envKeyNamespace = "VMKUBE_NAMESPACE"

// Comma separated list of controllers to run: pokemon, virtualmachine.
const envKeyControllers = "VMKUBE_CONTROLLERS"

// Reconcile workers per controller.
const (
	envKeyWorkers = "VMKUBE_WORKERS"
	envMinWorkers = 1
	envMaxWorkers = 64
)

// Requeue delay after a successful reconcile. Units: s, m, h (e.g. 300s, 5m).
const (
	envKeyRequeueInterval = "VMKUBE_REQUEUE_INTERVAL"
	envMinRequeueInterval = 10 * time.Second
)

// Requeue delay after a failed reconcile. Units: s, m, h (e.g. 300s, 5m).
const (
	envKeyErrorRequeueInterval = "VMKUBE_ERROR_REQUEUE_INTERVAL"
	envMinErrorRequeueInterval = time.Second
)

// Upper bound for a single reconcile. Units: s, m (e.g. 30s).
const (
	envKeyReconcileTimeout = "VMKUBE_RECONCILE_TIMEOUT"
	envMinReconcileTimeout = time.Second
)

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "VMKUBE_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Graceful shutdown deadline. Units: s, m (e.g. 10s).
const (
	envKeyShutdownTimeout = "VMKUBE_SHUTDOWN_TIMEOUT"
	envMinShutdownTimeout = time.Second
)

// Cron expression for a full resync of every cached object; empty disables it.
const envKeyResyncSchedule = "VMKUBE_RESYNC_SCHEDULE"

// Timezone for the resync schedule (IANA, e.g. Europe/Berlin). Defaults to UTC.
const envKeyResyncTZ = "VMKUBE_RESYNC_TZ"

// File whose presence makes the controller refuse to start or stop right after startup.
const envKeyTerminationFile = "VMKUBE_TERMINATION_FILE"

// Standard k8s env keys used as fallback when VMKUBE_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)
