package k8s

import (
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// NotFoundError marks an API 404. The controller treats it as "absent", not as a failure.
type NotFoundError struct {
	Err error
}

func (e *NotFoundError) Error() string {
	return e.Err.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *NotFoundError) IsNotFound() {}

// ConflictError marks an optimistic-concurrency failure: a stale resourceVersion
// or a create that lost the race to another writer.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	return e.Err.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func (e *ConflictError) IsConflict() {}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case apierrors.IsNotFound(err):
		return &NotFoundError{Err: err}
	case apierrors.IsConflict(err), apierrors.IsAlreadyExists(err):
		return &ConflictError{Err: err}
	}

	return err
}
