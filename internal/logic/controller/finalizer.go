package controller

import (
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// PhaseFunc is either the apply or the cleanup half of a reconcile.
type PhaseFunc[T client.Object] func(ctx context.Context, obj T) (Action, error)

// Finalize gates a reconcile on the finalizer protocol.
//
// A live object gets the finalizer added (once) and then runs apply. An object
// with a deletion timestamp runs cleanup; only a successful cleanup removes the
// finalizer, so cleanup may run more than once and must be idempotent.
func Finalize[T client.Object](
	ctx context.Context,
	repo FinalizerRepository,
	obj T,
	finalizer string,
	apply,
	cleanup PhaseFunc[T],
) (Action, error) {
	if !obj.GetDeletionTimestamp().IsZero() {
		if !controllerutil.ContainsFinalizer(obj, finalizer) {
			return AwaitChange(), nil
		}

		action, err := cleanup(ctx, obj)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %w", ErrCleanup, err)
		}

		err = repo.RemoveFinalizerCommand(ctx, obj, finalizer)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %w", ErrRemoveFinalizer, err)
		}

		return action, nil
	}

	if !controllerutil.ContainsFinalizer(obj, finalizer) {
		err := repo.AddFinalizerCommand(ctx, obj, finalizer)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %w", ErrAddFinalizer, err)
		}
	}

	return apply(ctx, obj)
}
