package app

import (
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/skillcoder/vmkube-controller/internal/adapters/inbound/informer"
	"github.com/skillcoder/vmkube-controller/internal/config"
	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	"github.com/skillcoder/vmkube-controller/internal/logic/pokemon"
	"github.com/skillcoder/vmkube-controller/internal/logic/virtualmachine"
	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

// kindProbe is a kind that must be queryable before the controllers start.
type kindProbe struct {
	kind string
	list client.ObjectList
}

type controllerDeps struct {
	logger    *slog.Logger
	cfg       *config.Config
	repo      controller.Repository
	recorder  controller.EventRecorder
	cache     *informer.Cache
	scheme    *runtime.Scheme
	metrics   controller.Metrics
	scheduler controller.Scheduler
}

type controllerSpec struct {
	name       string
	source     informer.SourceConfig
	reconciler func(deps controllerDeps) controller.Reconciler
}

func controllerSpecs() []controllerSpec {
	return []controllerSpec{
		{
			name: config.ControllerPokemon,
			source: informer.SourceConfig{
				Object: &pokemonv1.Pokemon{},
				List:   &pokemonv1.PokemonList{},
			},
			reconciler: func(deps controllerDeps) controller.Reconciler {
				return pokemon.New(deps.logger, deps.repo, deps.recorder, deps.cfg.RequeueInterval)
			},
		},
		{
			name: config.ControllerVirtualMachine,
			source: informer.SourceConfig{
				Object: &codesandboxv1alpha1.VirtualMachine{},
				List:   &codesandboxv1alpha1.VirtualMachineList{},
				Owned:  []client.Object{&corev1.Pod{}},
			},
			reconciler: func(deps controllerDeps) controller.Reconciler {
				return virtualmachine.New(deps.logger, deps.repo, deps.recorder, deps.cfg.RequeueInterval)
			},
		},
	}
}

// newControllers builds one controller service per enabled kind.
func newControllers(deps controllerDeps) ([]*controller.Service, []kindProbe, error) {
	var (
		services []*controller.Service
		probes   []kindProbe
	)

	errorPolicy := controller.NewFixedBackoff(deps.cfg.ErrorRequeueInterval)

	for _, spec := range controllerSpecs() {
		if !deps.cfg.Enabled(spec.name) {
			continue
		}

		reconciler := spec.reconciler(deps)
		logger := deps.logger.With("kind", reconciler.Kind())

		source, err := informer.NewSource(
			logger,
			deps.cache.Informers(),
			deps.cache.Informers(),
			deps.scheme,
			deps.cfg.Namespace,
			spec.source,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("create %s source: %w", spec.name, err)
		}

		services = append(services, controller.New(
			deps.logger,
			reconciler,
			errorPolicy,
			source,
			deps.metrics,
			deps.scheduler,
			controller.Options{
				Workers:          deps.cfg.Workers,
				ReconcileTimeout: deps.cfg.ReconcileTimeout,
				RequeueInterval:  deps.cfg.RequeueInterval,
				ResyncSchedule:   deps.cfg.ResyncSchedule,
				ResyncTZ:         deps.cfg.ResyncTZ,
			},
		))

		probes = append(probes, kindProbe{kind: reconciler.Kind(), list: spec.source.List})
	}

	if len(services) == 0 {
		return nil, nil, ErrNoControllers
	}

	return services, probes, nil
}
