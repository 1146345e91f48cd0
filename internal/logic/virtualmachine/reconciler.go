// Package virtualmachine converges VirtualMachine resources onto one Pod and
// one Service and records the observed state on the status subresource.
package virtualmachine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
)

const (
	ReasonCreated                = "Created"
	ReasonDeleted                = "Deleted"
	ReasonDeleteRequested        = "DeleteRequested"
	ReasonHibernationUnsupported = "HibernationUnsupported"
)

type Reconciler struct {
	logger          *slog.Logger
	repo            controller.Repository
	recorder        controller.EventRecorder
	requeueInterval time.Duration
}

var _ controller.Reconciler = (*Reconciler)(nil)

// New creates a new VirtualMachine reconciler.
func New(
	logger *slog.Logger,
	repo controller.Repository,
	recorder controller.EventRecorder,
	requeueInterval time.Duration,
) *Reconciler {
	if requeueInterval <= 0 {
		requeueInterval = controller.DefaultRequeueInterval
	}

	return &Reconciler{
		logger:          logger,
		repo:            repo,
		recorder:        recorder,
		requeueInterval: requeueInterval,
	}
}

func (*Reconciler) Kind() string {
	return codesandboxv1alpha1.VirtualMachineKind
}

func (r *Reconciler) Reconcile(ctx context.Context, key types.NamespacedName) (controller.Action, error) {
	logger := controller.LoggerFrom(ctx, r.logger)

	vm, err := r.repo.GetVirtualMachineQuery(ctx, key)
	if err != nil {
		if controller.IsNotFound(err) {
			logger.DebugContext(ctx, "virtual machine is gone")

			return controller.AwaitChange(), nil
		}

		return controller.Action{}, fmt.Errorf("%w: %w", controller.ErrGetObject, err)
	}

	return controller.Finalize(ctx, r.repo, vm, codesandboxv1alpha1.VirtualMachineFinalizer, r.apply, r.cleanup)
}

func (r *Reconciler) apply(ctx context.Context, vm *codesandboxv1alpha1.VirtualMachine) (controller.Action, error) {
	desired := vm.DesiredState()
	logger := controller.LoggerFrom(ctx, r.logger).With("desired", desired)

	obs := r.observe(ctx, vm)

	p, err := converge(desired, obs)
	if err != nil {
		if errors.Is(err, ErrHibernationNotImplemented) {
			r.recorder.Eventf(vm, corev1.EventTypeWarning, ReasonHibernationUnsupported,
				"Hibernation of %s is not supported yet", vm.Name)
		}

		return controller.Action{}, err
	}

	err = r.execute(ctx, logger, vm, p)
	if err != nil {
		return controller.Action{}, err
	}

	memoryUsage := ""
	if p.state == codesandboxv1alpha1.CurrentStarted {
		memoryUsage = r.memoryUsage(ctx, logger, vm)
	}

	if !statusChanged(vm, p.state, memoryUsage) {
		logger.DebugContext(ctx, "virtual machine is converged", "state", p.state)

		return controller.Requeue(r.requeueInterval), nil
	}

	patch := codesandboxv1alpha1.VirtualMachineStatusPatch{
		State:              ptr.To(p.state),
		ObservedGeneration: ptr.To(vm.Generation),
		MemoryUsage:        ptr.To(memoryUsage),
	}

	err = r.repo.PatchStatusCommand(ctx, vm, patch)
	if err != nil {
		return controller.Action{}, fmt.Errorf("%w: %w", controller.ErrPatchStatus, err)
	}

	logger.InfoContext(ctx, "virtual machine state changed",
		"from", vm.Status.State,
		"to", p.state,
	)

	return controller.Requeue(r.requeueInterval), nil
}

func (r *Reconciler) observe(ctx context.Context, vm *codesandboxv1alpha1.VirtualMachine) observation {
	var obs observation

	obs.pod, obs.podErr = r.repo.GetPodQuery(ctx, vm.Namespace, vm.Name)
	obs.svc, obs.svcErr = r.repo.GetServiceQuery(ctx, vm.Namespace, vm.Name)

	return obs
}

func (r *Reconciler) execute(
	ctx context.Context,
	logger *slog.Logger,
	vm *codesandboxv1alpha1.VirtualMachine,
	p plan,
) error {
	if p.createService {
		err := r.repo.CreateServiceCommand(ctx, desiredService(vm))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCreateService, err)
		}

		logger.InfoContext(ctx, "service created")
		r.recorder.Eventf(vm, corev1.EventTypeNormal, ReasonCreated, "Created service %s", vm.Name)
	}

	if p.createPod {
		err := r.repo.CreatePodCommand(ctx, desiredPod(vm))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCreatePod, err)
		}

		logger.InfoContext(ctx, "pod created", "image", vm.Spec.Image)
		r.recorder.Eventf(vm, corev1.EventTypeNormal, ReasonCreated, "Created pod %s", vm.Name)
	}

	if p.deletePod {
		err := r.repo.DeletePodCommand(ctx, vm.Namespace, vm.Name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDeletePod, err)
		}

		logger.InfoContext(ctx, "pod deleted")
		r.recorder.Eventf(vm, corev1.EventTypeNormal, ReasonDeleted, "Deleted pod %s", vm.Name)
	}

	if p.deleteService {
		err := r.repo.DeleteServiceCommand(ctx, vm.Namespace, vm.Name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDeleteService, err)
		}

		logger.InfoContext(ctx, "service deleted")
		r.recorder.Eventf(vm, corev1.EventTypeNormal, ReasonDeleted, "Deleted service %s", vm.Name)
	}

	return nil
}

// memoryUsage is best effort; metrics lag behind a freshly started Pod.
func (r *Reconciler) memoryUsage(
	ctx context.Context,
	logger *slog.Logger,
	vm *codesandboxv1alpha1.VirtualMachine,
) string {
	usage, err := r.repo.GetPodMemoryUsageQuery(ctx, vm.Namespace, vm.Name)
	if err != nil {
		logger.DebugContext(ctx, "pod memory usage unavailable", "reason", err)

		return ""
	}

	return usage.String()
}

func statusChanged(
	vm *codesandboxv1alpha1.VirtualMachine,
	state codesandboxv1alpha1.VirtualMachineCurrentState,
	memoryUsage string,
) bool {
	return vm.Status.State != state ||
		vm.Status.ObservedGeneration != vm.Generation ||
		vm.Status.MemoryUsage != memoryUsage
}

// cleanup deletes both children; deleting a missing child succeeds.
func (r *Reconciler) cleanup(ctx context.Context, vm *codesandboxv1alpha1.VirtualMachine) (controller.Action, error) {
	controller.LoggerFrom(ctx, r.logger).InfoContext(ctx, "cleaning up virtual machine")

	err := r.repo.DeletePodCommand(ctx, vm.Namespace, vm.Name)
	if err != nil {
		return controller.Action{}, fmt.Errorf("%w: %w", ErrDeletePod, err)
	}

	err = r.repo.DeleteServiceCommand(ctx, vm.Namespace, vm.Name)
	if err != nil {
		return controller.Action{}, fmt.Errorf("%w: %w", ErrDeleteService, err)
	}

	r.recorder.Eventf(vm, corev1.EventTypeNormal, ReasonDeleteRequested, "Delete %s", vm.Name)

	return controller.AwaitChange(), nil
}
