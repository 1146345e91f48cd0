// Package v1alpha1 contains the codesandbox.io/v1alpha1 API group.
//
// # VirtualMachine
//
// A VirtualMachine declares whether a workload should run. The controller
// backs a started VirtualMachine with one Pod and one Service named after it.
//
//	apiVersion: codesandbox.io/v1alpha1
//	kind: VirtualMachine
//	metadata:
//	  name: sandbox-1
//	spec:
//	  image: nginx:1.27
//	  state: STARTED
//
// +kubebuilder:object:generate=true
// +groupName=codesandbox.io
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "codesandbox.io", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)
