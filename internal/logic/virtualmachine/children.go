package virtualmachine

import (
	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
)

// LabelKey ties a Service selector to the Pod of one VirtualMachine.
const LabelKey = "codesandbox.io/virtualmachine"

// Selector returns the labels that select the Pod of the named VirtualMachine.
func Selector(name string) map[string]string {
	return map[string]string{LabelKey: name}
}

func childLabels(name string) map[string]string {
	labels := Selector(name)
	labels[controller.ManagedByLabelKey] = controller.ManagedByLabelValue

	return labels
}

func ownerOf(vm *codesandboxv1alpha1.VirtualMachine) controller.OwnerRef {
	return controller.OwnerRef{
		APIVersion: codesandboxv1alpha1.GroupVersion.String(),
		Kind:       codesandboxv1alpha1.VirtualMachineKind,
		Name:       vm.Name,
		UID:        vm.UID,
	}
}

// Children share the VirtualMachine's name so lookups never drift.
func desiredPod(vm *codesandboxv1alpha1.VirtualMachine) *controller.Pod {
	return &controller.Pod{
		Name:      vm.Name,
		Namespace: vm.Namespace,
		Labels:    childLabels(vm.Name),
		Owner:     ownerOf(vm),
		Image:     vm.Spec.Image,
		Port:      vm.EffectivePort(),
	}
}

func desiredService(vm *codesandboxv1alpha1.VirtualMachine) *controller.ServiceObject {
	return &controller.ServiceObject{
		Name:      vm.Name,
		Namespace: vm.Namespace,
		Labels:    childLabels(vm.Name),
		Selector:  Selector(vm.Name),
		Owner:     ownerOf(vm),
		Port:      vm.EffectivePort(),
	}
}
