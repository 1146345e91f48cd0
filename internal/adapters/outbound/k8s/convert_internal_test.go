package k8s

import (
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

func TestAllContainersStarted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveSpec   int
		giveStatus []*bool
		want       bool
	}{
		{name: "no statuses yet", giveSpec: 1},
		{name: "started unknown", giveSpec: 1, giveStatus: []*bool{nil}},
		{name: "not started", giveSpec: 1, giveStatus: []*bool{ptr.To(false)}},
		{name: "one of two started", giveSpec: 2, giveStatus: []*bool{ptr.To(true), ptr.To(false)}},
		{name: "all started", giveSpec: 2, giveStatus: []*bool{ptr.To(true), ptr.To(true)}, want: true},
		{name: "no containers", giveSpec: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pod := &corev1.Pod{}
			for range tt.giveSpec {
				pod.Spec.Containers = append(pod.Spec.Containers, corev1.Container{Name: "c"})
			}

			for _, started := range tt.giveStatus {
				pod.Status.ContainerStatuses = append(pod.Status.ContainerStatuses, corev1.ContainerStatus{Started: started})
			}

			require.Equal(t, tt.want, allContainersStarted(pod))
		})
	}
}

func TestToDomainPod_Terminating(t *testing.T) {
	t.Parallel()

	now := metav1.Now()
	pod := &corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "vm-a", DeletionTimestamp: &now}}

	got := toDomainPod(pod)
	require.True(t, got.Terminating)
	require.Empty(t, got.Owner.Name)
}

func TestToOwnerReferences_Empty(t *testing.T) {
	t.Parallel()

	require.Nil(t, toOwnerReferences(toDomainOwner(nil)))
}
