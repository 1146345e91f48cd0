package informer

import (
	"context"
	"fmt"
	"log/slog"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	toolscache "k8s.io/client-go/tools/cache"
	crcache "sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
)

// SourceConfig describes what one controller watches.
type SourceConfig struct {
	// Object is the reconciled kind.
	Object client.Object
	// List is the list type of Object, used for resync.
	List client.ObjectList
	// Owned kinds enqueue their controller owner when it is of kind Object.
	Owned []client.Object
}

// Source turns informer notifications into reconcile keys.
type Source struct {
	logger    *slog.Logger
	informers crcache.Informers
	reader    client.Reader
	namespace string
	gvk       schema.GroupVersionKind
	cfg       SourceConfig
}

// NewSource creates a watch source. reader serves resync listing, usually the
// same cache.
func NewSource(
	logger *slog.Logger,
	informers crcache.Informers,
	reader client.Reader,
	scheme *runtime.Scheme,
	namespace string,
	cfg SourceConfig,
) (*Source, error) {
	gvk, err := apiutil.GVKForObject(cfg.Object, scheme)
	if err != nil {
		return nil, fmt.Errorf("resolve source kind: %w", err)
	}

	return &Source{
		logger:    logger.With("source", gvk.Kind),
		informers: informers,
		reader:    reader,
		namespace: namespace,
		gvk:       gvk,
		cfg:       cfg,
	}, nil
}

var _ controller.Source = (*Source)(nil)

// Register attaches event handlers for the reconciled kind and its owned kinds.
func (s *Source) Register(ctx context.Context, enqueue func(types.NamespacedName)) error {
	primary, err := s.informers.GetInformer(ctx, s.cfg.Object)
	if err != nil {
		return fmt.Errorf("get %s informer: %w", s.gvk.Kind, err)
	}

	_, err = primary.AddEventHandler(s.handler(func(obj client.Object) {
		enqueue(client.ObjectKeyFromObject(obj))
	}))
	if err != nil {
		return fmt.Errorf("add %s event handler: %w", s.gvk.Kind, err)
	}

	for _, owned := range s.cfg.Owned {
		informer, err := s.informers.GetInformer(ctx, owned)
		if err != nil {
			return fmt.Errorf("get owned %T informer: %w", owned, err)
		}

		_, err = informer.AddEventHandler(s.handler(func(obj client.Object) {
			if key, ok := s.ownerKey(obj); ok {
				enqueue(key)
			}
		}))
		if err != nil {
			return fmt.Errorf("add owned %T event handler: %w", owned, err)
		}
	}

	s.logger.InfoContext(ctx, "watch registered", "owned", len(s.cfg.Owned))

	return nil
}

// ListKeys returns the key of every object of the reconciled kind.
func (s *Source) ListKeys(ctx context.Context) ([]types.NamespacedName, error) {
	list, ok := s.cfg.List.DeepCopyObject().(client.ObjectList)
	if !ok {
		return nil, fmt.Errorf("list %s: %w", s.gvk.Kind, ErrNotObject)
	}

	var opts []client.ListOption
	if s.namespace != "" {
		opts = append(opts, client.InNamespace(s.namespace))
	}

	if err := s.reader.List(ctx, list, opts...); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.gvk.Kind, err)
	}

	keys := make([]types.NamespacedName, 0, meta.LenList(list))

	err := meta.EachListItem(list, func(item runtime.Object) error {
		obj, ok := item.(client.Object)
		if !ok {
			return fmt.Errorf("%w: %T", ErrNotObject, item)
		}

		keys = append(keys, client.ObjectKeyFromObject(obj))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.gvk.Kind, err)
	}

	return keys, nil
}

func (s *Source) handler(fn func(client.Object)) toolscache.ResourceEventHandlerFuncs {
	return toolscache.ResourceEventHandlerFuncs{
		AddFunc: func(obj any) {
			s.dispatch(obj, fn)
		},
		UpdateFunc: func(_, newObj any) {
			s.dispatch(newObj, fn)
		},
		DeleteFunc: func(obj any) {
			if tombstone, ok := obj.(toolscache.DeletedFinalStateUnknown); ok {
				obj = tombstone.Obj
			}

			s.dispatch(obj, fn)
		},
	}
}

func (s *Source) dispatch(obj any, fn func(client.Object)) {
	o, ok := obj.(client.Object)
	if !ok {
		s.logger.Warn("dropping event", "reason", ErrNotObject, "type", fmt.Sprintf("%T", obj))

		return
	}

	fn(o)
}

// ownerKey maps an owned object to its controller owner when that owner is
// of the reconciled kind.
func (s *Source) ownerKey(obj client.Object) (types.NamespacedName, bool) {
	ref := metav1.GetControllerOf(obj)
	if ref == nil || ref.Kind != s.gvk.Kind {
		return types.NamespacedName{}, false
	}

	gv, err := schema.ParseGroupVersion(ref.APIVersion)
	if err != nil || gv.Group != s.gvk.Group {
		return types.NamespacedName{}, false
	}

	return types.NamespacedName{Namespace: obj.GetNamespace(), Name: ref.Name}, true
}
