package app

import (
	"context"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	typedcorev1 "k8s.io/client-go/kubernetes/typed/core/v1"
	"k8s.io/client-go/tools/record"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
)

// eventBroadcaster publishes recorded events to the API server.
type eventBroadcaster struct {
	logger      *slog.Logger
	broadcaster record.EventBroadcaster
	recorder    record.EventRecorder
}

func newEventBroadcaster(logger *slog.Logger, clientset kubernetes.Interface, scheme *runtime.Scheme) *eventBroadcaster {
	broadcaster := record.NewBroadcaster()
	broadcaster.StartRecordingToSink(&typedcorev1.EventSinkImpl{
		Interface: clientset.CoreV1().Events(""),
	})

	return &eventBroadcaster{
		logger:      logger,
		broadcaster: broadcaster,
		recorder: broadcaster.NewRecorder(scheme, corev1.EventSource{
			Component: controller.FieldManager,
		}),
	}
}

func (e *eventBroadcaster) Name() string {
	return "event-broadcaster"
}

// Shutdown flushes queued events and stops the broadcaster.
func (e *eventBroadcaster) Shutdown(ctx context.Context) error {
	e.broadcaster.Shutdown()
	e.logger.InfoContext(ctx, "event broadcaster shut downed")

	return nil
}
