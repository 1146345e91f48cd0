package controller

import "k8s.io/apimachinery/pkg/types"

// OwnerRef is a back-reference from a child resource to the managed resource.
type OwnerRef struct {
	APIVersion string
	Kind       string
	Name       string
	UID        types.UID
}

// Pod represents a child Pod in the domain layer.
type Pod struct {
	Name      string
	Namespace string
	Labels    map[string]string
	Owner     OwnerRef
	Image     string
	Port      int32

	// Observed fields, filled by queries only.
	ContainersStarted bool
	Terminating       bool
}

// ServiceObject represents a child Kubernetes Service in the domain layer.
type ServiceObject struct {
	Name      string
	Namespace string
	Labels    map[string]string
	Selector  map[string]string
	Owner     OwnerRef
	Port      int32
}
