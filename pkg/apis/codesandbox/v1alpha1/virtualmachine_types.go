package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// VirtualMachineKind is the kind name of the VirtualMachine resource.
	VirtualMachineKind = "VirtualMachine"

	// VirtualMachinePlural is the resource name used in API paths.
	VirtualMachinePlural = "virtualmachines"

	// VirtualMachineShortName is the kubectl short name.
	VirtualMachineShortName = "vm"

	// VirtualMachineFinalizer guards VirtualMachine deletion until its children are gone.
	VirtualMachineFinalizer = "vm.codesandbox.io"

	// DefaultPort is exposed by the Pod and Service when spec.port is unset.
	DefaultPort int32 = 80
)

// VirtualMachineDesiredState is the lifecycle phase requested by the owner.
//
// +kubebuilder:validation:Enum=STOPPED;STARTED;HIBERNATED
type VirtualMachineDesiredState string

const (
	DesiredStopped    VirtualMachineDesiredState = "STOPPED"
	DesiredStarted    VirtualMachineDesiredState = "STARTED"
	DesiredHibernated VirtualMachineDesiredState = "HIBERNATED"
)

// DesiredStates lists every accepted desired state in declaration order.
func DesiredStates() []VirtualMachineDesiredState {
	return []VirtualMachineDesiredState{DesiredStopped, DesiredStarted, DesiredHibernated}
}

// VirtualMachineCurrentState is the lifecycle phase last observed by the controller.
//
// +kubebuilder:validation:Enum=STOPPED;STOPPING;STARTED;STARTING;HIBERNATING;HIBERNATED
type VirtualMachineCurrentState string

const (
	CurrentStopped     VirtualMachineCurrentState = "STOPPED"
	CurrentStopping    VirtualMachineCurrentState = "STOPPING"
	CurrentStarted     VirtualMachineCurrentState = "STARTED"
	CurrentStarting    VirtualMachineCurrentState = "STARTING"
	CurrentHibernating VirtualMachineCurrentState = "HIBERNATING"
	CurrentHibernated  VirtualMachineCurrentState = "HIBERNATED"
)

// CurrentStates lists every current state in declaration order.
func CurrentStates() []VirtualMachineCurrentState {
	return []VirtualMachineCurrentState{
		CurrentStopped,
		CurrentStopping,
		CurrentStarted,
		CurrentStarting,
		CurrentHibernating,
		CurrentHibernated,
	}
}

// VirtualMachineSpec is the desired state of a VirtualMachine.
type VirtualMachineSpec struct {
	Image string `json:"image"`

	// +kubebuilder:default=STOPPED
	State VirtualMachineDesiredState `json:"state"`

	// +optional
	Port int32 `json:"port,omitempty"`
}

// VirtualMachineStatus is the observed state of a VirtualMachine.
type VirtualMachineStatus struct {
	// +optional
	State VirtualMachineCurrentState `json:"state,omitempty"`

	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// MemoryUsage is the summed container working set reported by metrics.k8s.io.
	// +optional
	MemoryUsage string `json:"memoryUsage,omitempty"`

	// Conditions are owned by other writers and never touched by the controller.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=vm

// VirtualMachine is the Schema for the virtualmachines API.
type VirtualMachine struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   VirtualMachineSpec   `json:"spec,omitempty"`
	Status VirtualMachineStatus `json:"status,omitempty"`
}

// EffectivePort returns spec.port or DefaultPort.
func (vm *VirtualMachine) EffectivePort() int32 {
	if vm.Spec.Port > 0 {
		return vm.Spec.Port
	}

	return DefaultPort
}

// DesiredState returns spec.state, treating an empty value as STOPPED.
func (vm *VirtualMachine) DesiredState() VirtualMachineDesiredState {
	if vm.Spec.State == "" {
		return DesiredStopped
	}

	return vm.Spec.State
}

// +kubebuilder:object:root=true

// VirtualMachineList contains a list of VirtualMachine.
type VirtualMachineList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []VirtualMachine `json:"items"`
}

func init() {
	SchemeBuilder.Register(&VirtualMachine{}, &VirtualMachineList{})
}
