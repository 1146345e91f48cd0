package virtualmachine

import (
	"fmt"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
)

// observation is what one reconcile saw of the child resources.
// A nil error with a nil child never happens; lookups return one or the other.
type observation struct {
	pod    *controller.Pod
	podErr error
	svc    *controller.ServiceObject
	svcErr error
}

// plan lists the child operations of one reconcile and the resulting state.
// Creates run Service first, deletes run Pod first.
type plan struct {
	createService bool
	createPod     bool
	deletePod     bool
	deleteService bool
	state         codesandboxv1alpha1.VirtualMachineCurrentState
}

func converge(desired codesandboxv1alpha1.VirtualMachineDesiredState, obs observation) (plan, error) {
	switch desired {
	case codesandboxv1alpha1.DesiredStarted:
		return convergeStarted(obs)
	case codesandboxv1alpha1.DesiredStopped:
		return convergeStopped(obs), nil
	case codesandboxv1alpha1.DesiredHibernated:
		return plan{}, ErrHibernationNotImplemented
	}

	return plan{}, fmt.Errorf("%w: %q", ErrUnknownDesiredState, desired)
}

func convergeStarted(obs observation) (plan, error) {
	// only a 404 may lead to a create
	svcMissing := controller.IsNotFound(obs.svcErr)
	if obs.svcErr != nil && !svcMissing {
		return plan{}, fmt.Errorf("%w: %w", ErrGetService, obs.svcErr)
	}

	podMissing := controller.IsNotFound(obs.podErr)
	if obs.podErr != nil && !podMissing {
		return plan{}, fmt.Errorf("%w: %w", ErrGetPod, obs.podErr)
	}

	p := plan{
		createService: svcMissing,
		createPod:     podMissing,
		state:         codesandboxv1alpha1.CurrentStarting,
	}

	if !podMissing && obs.pod.ContainersStarted && !obs.pod.Terminating {
		p.state = codesandboxv1alpha1.CurrentStarted
	}

	return p, nil
}

func convergeStopped(obs observation) plan {
	p := plan{
		deletePod:     obs.podErr == nil,
		deleteService: obs.svcErr == nil,
		state:         codesandboxv1alpha1.CurrentStopping,
	}

	if controller.IsNotFound(obs.podErr) && controller.IsNotFound(obs.svcErr) {
		p.state = codesandboxv1alpha1.CurrentStopped
	}

	return p
}
