package controller

import (
	"errors"
)

var (
	ErrGetObject          = errors.New("get object")
	ErrAddFinalizer       = errors.New("add finalizer")
	ErrRemoveFinalizer    = errors.New("remove finalizer")
	ErrCleanup            = errors.New("cleanup")
	ErrPatchStatus        = errors.New("patch status")
	ErrReconcilePanic     = errors.New("reconcile panic")
	ErrResourceNotQueried = errors.New("resource type is not queryable")
)

// IsNotFound reports whether err carries a "not found" marker from the adapter layer.
func IsNotFound(err error) bool {
	var target notFound

	return errors.As(err, &target)
}

// IsConflict reports whether err carries an optimistic-concurrency conflict marker.
func IsConflict(err error) bool {
	var target conflict

	return errors.As(err, &target)
}
