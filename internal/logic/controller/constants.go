package controller

import "time"

const (
	// ManagedByLabelKey marks child resources created by the controller.
	ManagedByLabelKey = "app.kubernetes.io/managed-by"

	// ManagedByLabelValue is the value of ManagedByLabelKey and the event source component.
	ManagedByLabelValue = "vmkube-controller"

	// FieldManager identifies the controller's writes on the API server.
	FieldManager = "vmkube-controller"

	DefaultRequeueInterval      = 300 * time.Second
	DefaultErrorRequeueInterval = 300 * time.Second
	DefaultReconcileTimeout     = 30 * time.Second
	DefaultWorkers              = 4

	// staleFactor multiplies the requeue interval to decide when a busy queue is stuck.
	staleFactor = 2
)
