package k8s

import (
	"context"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
)

const (
	containerName = "vm"
	portName      = "http"
)

func toDomainPod(pod *corev1.Pod) *controller.Pod {
	out := &controller.Pod{
		Name:              pod.Name,
		Namespace:         pod.Namespace,
		Labels:            pod.Labels,
		Owner:             toDomainOwner(metav1.GetControllerOf(pod)),
		ContainersStarted: allContainersStarted(pod),
		Terminating:       pod.DeletionTimestamp != nil,
	}

	if len(pod.Spec.Containers) > 0 {
		container := pod.Spec.Containers[0]
		out.Image = container.Image

		if len(container.Ports) > 0 {
			out.Port = container.Ports[0].ContainerPort
		}
	}

	return out
}

func allContainersStarted(pod *corev1.Pod) bool {
	if len(pod.Spec.Containers) == 0 || len(pod.Status.ContainerStatuses) < len(pod.Spec.Containers) {
		return false
	}

	for i := range pod.Status.ContainerStatuses {
		if !ptr.Deref(pod.Status.ContainerStatuses[i].Started, false) {
			return false
		}
	}

	return true
}

func toCorePod(pod *controller.Pod) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:            pod.Name,
			Namespace:       pod.Namespace,
			Labels:          pod.Labels,
			OwnerReferences: toOwnerReferences(pod.Owner),
		},
		Spec: corev1.PodSpec{
			RestartPolicy: corev1.RestartPolicyAlways,
			Containers: []corev1.Container{
				{
					Name:  containerName,
					Image: pod.Image,
					Ports: []corev1.ContainerPort{
						{
							Name:          portName,
							ContainerPort: pod.Port,
							Protocol:      corev1.ProtocolTCP,
						},
					},
				},
			},
		},
	}
}

func toDomainService(svc *corev1.Service) *controller.ServiceObject {
	out := &controller.ServiceObject{
		Name:      svc.Name,
		Namespace: svc.Namespace,
		Labels:    svc.Labels,
		Selector:  svc.Spec.Selector,
		Owner:     toDomainOwner(metav1.GetControllerOf(svc)),
	}

	if len(svc.Spec.Ports) > 0 {
		out.Port = svc.Spec.Ports[0].Port
	}

	return out
}

func toCoreService(svc *controller.ServiceObject) *corev1.Service {
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:            svc.Name,
			Namespace:       svc.Namespace,
			Labels:          svc.Labels,
			OwnerReferences: toOwnerReferences(svc.Owner),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: svc.Selector,
			Ports: []corev1.ServicePort{
				{
					Name:       portName,
					Port:       svc.Port,
					TargetPort: intstr.FromString(portName),
					Protocol:   corev1.ProtocolTCP,
				},
			},
		},
	}
}

func toDomainOwner(ref *metav1.OwnerReference) controller.OwnerRef {
	if ref == nil {
		return controller.OwnerRef{}
	}

	return controller.OwnerRef{
		APIVersion: ref.APIVersion,
		Kind:       ref.Kind,
		Name:       ref.Name,
		UID:        ref.UID,
	}
}

func toOwnerReferences(owner controller.OwnerRef) []metav1.OwnerReference {
	if owner.Name == "" {
		return nil
	}

	return []metav1.OwnerReference{
		{
			APIVersion:         owner.APIVersion,
			Kind:               owner.Kind,
			Name:               owner.Name,
			UID:                owner.UID,
			Controller:         ptr.To(true),
			BlockOwnerDeletion: ptr.To(true),
		},
	}
}

func sumMemoryUsage(
	ctx context.Context,
	logger *slog.Logger,
	podMetrics *metricsv1beta1.PodMetrics,
) *resource.Quantity {
	memoryUsage := resource.NewQuantity(0, resource.BinarySI)

	for i := range podMetrics.Containers {
		containerMemoryUsage := podMetrics.Containers[i].Usage.Memory()
		if containerMemoryUsage == nil {
			logger.WarnContext(ctx, "container memory usage is nil, skipping",
				"pod", podMetrics.Name,
				"namespace", podMetrics.Namespace,
				"container", podMetrics.Containers[i].Name,
			)

			continue
		}

		memoryUsage.Add(*containerMemoryUsage)
	}

	return memoryUsage
}
