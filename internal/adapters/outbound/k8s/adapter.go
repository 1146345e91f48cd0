package k8s

import (
	"context"
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

type adapter struct {
	logger           *slog.Logger
	client           client.Client
	metricsClientset metricsv.Interface
	namespace        string
}

// New creates a new K8s adapter. c should read straight from the API server,
// not from an informer cache. An empty namespace means all namespaces.
func New(
	logger *slog.Logger,
	c client.Client,
	metricsClientset metricsv.Interface,
	namespace string,
) controller.Repository {
	return &adapter{
		logger:           logger,
		client:           c,
		metricsClientset: metricsClientset,
		namespace:        namespace,
	}
}

var _ controller.Repository = (*adapter)(nil)

func (a *adapter) ProbeKindQuery(
	ctx context.Context,
	list client.ObjectList,
) error {
	err := a.client.List(ctx, list, client.Limit(1), client.InNamespace(a.namespace))
	if err != nil {
		return fmt.Errorf("list %T: %w", list, translateError(err))
	}

	return nil
}

func (a *adapter) GetPokemonQuery(
	ctx context.Context,
	key types.NamespacedName,
) (*pokemonv1.Pokemon, error) {
	obj := &pokemonv1.Pokemon{}

	err := a.client.Get(ctx, key, obj)
	if err != nil {
		return nil, fmt.Errorf("get pokemon: %w", translateError(err))
	}

	return obj, nil
}

func (a *adapter) GetVirtualMachineQuery(
	ctx context.Context,
	key types.NamespacedName,
) (*codesandboxv1alpha1.VirtualMachine, error) {
	obj := &codesandboxv1alpha1.VirtualMachine{}

	err := a.client.Get(ctx, key, obj)
	if err != nil {
		return nil, fmt.Errorf("get virtual machine: %w", translateError(err))
	}

	return obj, nil
}

func (a *adapter) AddFinalizerCommand(
	ctx context.Context,
	obj client.Object,
	finalizer string,
) error {
	if controllerutil.ContainsFinalizer(obj, finalizer) {
		return nil
	}

	base, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return fmt.Errorf("add finalizer: unexpected object type %T", obj)
	}

	controllerutil.AddFinalizer(obj, finalizer)

	return a.patchFinalizers(ctx, "add finalizer", base, obj)
}

func (a *adapter) RemoveFinalizerCommand(
	ctx context.Context,
	obj client.Object,
	finalizer string,
) error {
	if !controllerutil.ContainsFinalizer(obj, finalizer) {
		return nil
	}

	base, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return fmt.Errorf("remove finalizer: unexpected object type %T", obj)
	}

	controllerutil.RemoveFinalizer(obj, finalizer)

	return a.patchFinalizers(ctx, "remove finalizer", base, obj)
}

// patchFinalizers sends a merge patch carrying resourceVersion, so a concurrent
// finalizer edit by another writer turns into a conflict instead of being lost.
func (a *adapter) patchFinalizers(
	ctx context.Context,
	op string,
	base,
	obj client.Object,
) error {
	err := a.client.Patch(
		ctx,
		obj,
		client.MergeFromWithOptions(base, client.MergeFromWithOptimisticLock{}),
		client.FieldOwner(controller.FieldManager),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	return nil
}

func (a *adapter) PatchStatusCommand(
	ctx context.Context,
	obj client.Object,
	patch controller.StatusPatch,
) error {
	data, err := patch.MergePatch()
	if err != nil {
		return fmt.Errorf("render status patch: %w", err)
	}

	err = a.client.Status().Patch(
		ctx,
		obj,
		client.RawPatch(types.MergePatchType, data),
		client.FieldOwner(controller.FieldManager),
	)
	if err != nil {
		return fmt.Errorf("patch status: %w", translateError(err))
	}

	return nil
}

func (a *adapter) GetPodQuery(
	ctx context.Context,
	namespace,
	name string,
) (*controller.Pod, error) {
	pod := &corev1.Pod{}

	err := a.client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, pod)
	if err != nil {
		return nil, fmt.Errorf("get pod: %w", translateError(err))
	}

	return toDomainPod(pod), nil
}

func (a *adapter) CreatePodCommand(
	ctx context.Context,
	pod *controller.Pod,
) error {
	err := a.client.Create(ctx, toCorePod(pod), client.FieldOwner(controller.FieldManager))
	if err != nil {
		return fmt.Errorf("create pod: %w", translateError(err))
	}

	return nil
}

func (a *adapter) DeletePodCommand(
	ctx context.Context,
	namespace,
	name string,
) error {
	pod := &corev1.Pod{ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name}}

	return a.delete(ctx, "delete pod", pod)
}

func (a *adapter) GetServiceQuery(
	ctx context.Context,
	namespace,
	name string,
) (*controller.ServiceObject, error) {
	svc := &corev1.Service{}

	err := a.client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, svc)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", translateError(err))
	}

	return toDomainService(svc), nil
}

func (a *adapter) CreateServiceCommand(
	ctx context.Context,
	svc *controller.ServiceObject,
) error {
	err := a.client.Create(ctx, toCoreService(svc), client.FieldOwner(controller.FieldManager))
	if err != nil {
		return fmt.Errorf("create service: %w", translateError(err))
	}

	return nil
}

func (a *adapter) DeleteServiceCommand(
	ctx context.Context,
	namespace,
	name string,
) error {
	svc := &corev1.Service{ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name}}

	return a.delete(ctx, "delete service", svc)
}

// delete succeeds when the object is already gone.
func (a *adapter) delete(ctx context.Context, op string, obj client.Object) error {
	err := a.client.Delete(ctx, obj, client.PropagationPolicy(metav1.DeletePropagationBackground))
	if err != nil {
		err = translateError(err)
		if controller.IsNotFound(err) {
			a.logger.DebugContext(ctx, "object already deleted",
				"kind", fmt.Sprintf("%T", obj),
				"namespace", obj.GetNamespace(),
				"name", obj.GetName(),
			)

			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *adapter) GetPodMemoryUsageQuery(
	ctx context.Context,
	namespace,
	name string,
) (*resource.Quantity, error) {
	podMetrics, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).Get(
		ctx,
		name,
		metav1.GetOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("get pod metrics: %w", translateError(err))
	}

	return sumMemoryUsage(ctx, a.logger, podMetrics), nil
}
