package controller

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

// FinalizerRepository adds and removes finalizer markers.
type FinalizerRepository interface {
	AddFinalizerCommand(
		ctx context.Context,
		obj client.Object,
		finalizer string,
	) error

	RemoveFinalizerCommand(
		ctx context.Context,
		obj client.Object,
		finalizer string,
	) error
}

// StatusPatch renders a typed status merge patch.
type StatusPatch interface {
	MergePatch() ([]byte, error)
}

// Repository is the port interface for orchestration API operations.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	FinalizerRepository

	ProbeKindQuery(
		ctx context.Context,
		list client.ObjectList,
	) error

	GetPokemonQuery(
		ctx context.Context,
		key types.NamespacedName,
	) (*pokemonv1.Pokemon, error)

	GetVirtualMachineQuery(
		ctx context.Context,
		key types.NamespacedName,
	) (*codesandboxv1alpha1.VirtualMachine, error)

	PatchStatusCommand(
		ctx context.Context,
		obj client.Object,
		patch StatusPatch,
	) error

	GetPodQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*Pod, error)

	CreatePodCommand(
		ctx context.Context,
		pod *Pod,
	) error

	DeletePodCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	GetServiceQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*ServiceObject, error)

	CreateServiceCommand(
		ctx context.Context,
		svc *ServiceObject,
	) error

	DeleteServiceCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	GetPodMemoryUsageQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*resource.Quantity, error)
}

// EventRecorder publishes best-effort diagnostic events. It is satisfied by
// record.EventRecorder.
type EventRecorder interface {
	Event(object runtime.Object, eventtype, reason, message string)
	Eventf(object runtime.Object, eventtype, reason, messageFmt string, args ...any)
}

// Reconciler converges one kind of managed resource.
type Reconciler interface {
	Kind() string
	Reconcile(ctx context.Context, key types.NamespacedName) (Action, error)
}

// ErrorPolicy maps a reconcile failure to the next action.
type ErrorPolicy interface {
	Next(key types.NamespacedName, err error) Action
}

// Source delivers change notifications for one kind.
type Source interface {
	Register(ctx context.Context, enqueue func(types.NamespacedName)) error
	ListKeys(ctx context.Context) ([]types.NamespacedName, error)
}

// Metrics receives reconcile observations.
type Metrics interface {
	ObserveReconcile(kind string, duration time.Duration)
	ReconcileFailure(kind, namespace, name string)
}

// Scheduler computes the next resync time from a cron expression.
type Scheduler interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// conflict is a private interface for checking optimistic-concurrency conflicts
// without importing the adapter package.
type conflict interface {
	IsConflict()
}
