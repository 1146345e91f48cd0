// Package pokemon reconciles Pokemon resources: it records whether a Pokemon
// is alive and publishes an event when one comes back to life.
package pokemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

const (
	ReasonAliveRequested  = "AliveRequested"
	ReasonDeleteRequested = "DeleteRequested"
)

type Reconciler struct {
	logger          *slog.Logger
	repo            controller.Repository
	recorder        controller.EventRecorder
	requeueInterval time.Duration
}

var _ controller.Reconciler = (*Reconciler)(nil)

// New creates a new Pokemon reconciler.
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
	return pokemonv1.PokemonKind
}

func (r *Reconciler) Reconcile(ctx context.Context, key types.NamespacedName) (controller.Action, error) {
	logger := controller.LoggerFrom(ctx, r.logger)

	obj, err := r.repo.GetPokemonQuery(ctx, key)
	if err != nil {
		if controller.IsNotFound(err) {
			logger.DebugContext(ctx, "pokemon is gone")

			return controller.AwaitChange(), nil
		}

		return controller.Action{}, fmt.Errorf("%w: %w", controller.ErrGetObject, err)
	}

	return controller.Finalize(ctx, r.repo, obj, pokemonv1.PokemonFinalizer, r.apply, r.cleanup)
}

func (r *Reconciler) apply(ctx context.Context, obj *pokemonv1.Pokemon) (controller.Action, error) {
	logger := controller.LoggerFrom(ctx, r.logger)

	shouldBeAlive := obj.Spec.Health > 0

	// published once per transition to alive
	if !obj.IsAlive() && shouldBeAlive {
		r.recorder.Eventf(obj, corev1.EventTypeNormal, ReasonAliveRequested, "Aliving %s", obj.Name)
	}

	err := r.repo.PatchStatusCommand(ctx, obj, pokemonv1.PokemonStatusPatch{Alive: ptr.To(shouldBeAlive)})
	if err != nil {
		return controller.Action{}, fmt.Errorf("%w: %w", controller.ErrPatchStatus, err)
	}

	logger.DebugContext(ctx, "pokemon reconciled", "health", obj.Spec.Health, "alive", shouldBeAlive)

	return controller.Requeue(r.requeueInterval), nil
}

func (r *Reconciler) cleanup(ctx context.Context, obj *pokemonv1.Pokemon) (controller.Action, error) {
	controller.LoggerFrom(ctx, r.logger).InfoContext(ctx, "cleaning up pokemon")

	r.recorder.Eventf(obj, corev1.EventTypeNormal, ReasonDeleteRequested, "Delete %s", obj.Name)

	return controller.AwaitChange(), nil
}
