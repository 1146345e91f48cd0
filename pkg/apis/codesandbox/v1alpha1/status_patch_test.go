package v1alpha1_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
)

func jsonNames(t *testing.T, typ reflect.Type) map[string]bool {
	t.Helper()

	names := make(map[string]bool, typ.NumField())

	for i := range typ.NumField() {
		tag := typ.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}

		names[strings.Split(tag, ",")[0]] = true
	}

	return names
}

func TestVirtualMachineStatusPatch_FieldsExistInStatus(t *testing.T) {
	t.Parallel()

	status := jsonNames(t, reflect.TypeFor[v1alpha1.VirtualMachineStatus]())
	patch := jsonNames(t, reflect.TypeFor[v1alpha1.VirtualMachineStatusPatch]())

	require.NotEmpty(t, patch)

	for name := range patch {
		require.True(t, status[name], "patch field %q is not part of VirtualMachineStatus", name)
	}

	require.False(t, patch["conditions"], "conditions belong to other writers")
}

type mergePatchCase struct {
	name  string
	give  v1alpha1.VirtualMachineStatusPatch
	wantJ string
}

func TestVirtualMachineStatusPatch_MergePatch(t *testing.T) {
	t.Parallel()

	state := v1alpha1.CurrentStarting
	generation := int64(3)
	usage := "128Mi"
	empty := ""

	tests := []mergePatchCase{
		{
			name:  "empty patch renders empty status",
			give:  v1alpha1.VirtualMachineStatusPatch{},
			wantJ: `{"status":{}}`,
		},
		{
			name:  "state and generation",
			give:  v1alpha1.VirtualMachineStatusPatch{State: &state, ObservedGeneration: &generation},
			wantJ: `{"status":{"observedGeneration":3,"state":"STARTING"}}`,
		},
		{
			name:  "memory usage set",
			give:  v1alpha1.VirtualMachineStatusPatch{MemoryUsage: &usage},
			wantJ: `{"status":{"memoryUsage":"128Mi"}}`,
		},
		{
			name:  "empty memory usage clears the field",
			give:  v1alpha1.VirtualMachineStatusPatch{MemoryUsage: &empty},
			wantJ: `{"status":{"memoryUsage":null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.give.MergePatch()
			require.NoError(t, err)
			require.JSONEq(t, tt.wantJ, string(got))
		})
	}
}

func TestVirtualMachine_Defaults(t *testing.T) {
	t.Parallel()

	vm := &v1alpha1.VirtualMachine{}
	require.Equal(t, v1alpha1.DesiredStopped, vm.DesiredState())
	require.Equal(t, v1alpha1.DefaultPort, vm.EffectivePort())

	vm.Spec.State = v1alpha1.DesiredStarted
	vm.Spec.Port = 8443
	require.Equal(t, v1alpha1.DesiredStarted, vm.DesiredState())
	require.Equal(t, int32(8443), vm.EffectivePort())
}
