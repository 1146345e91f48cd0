package crd_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/vmkube-controller/internal/crd"
	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

func TestAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		giveCRD       *apiextensionsv1.CustomResourceDefinition
		wantName      string
		wantGroup     string
		wantVersion   string
		wantKind      string
		wantShortName string
	}{
		{
			name:          "pokemon",
			giveCRD:       crd.Pokemon(),
			wantName:      "pokemons.pokemon.rs",
			wantGroup:     "pokemon.rs",
			wantVersion:   "v1",
			wantKind:      "Pokemon",
			wantShortName: "poke",
		},
		{
			name:          "virtualmachine",
			giveCRD:       crd.VirtualMachine(),
			wantName:      "virtualmachines.codesandbox.io",
			wantGroup:     "codesandbox.io",
			wantVersion:   "v1alpha1",
			wantKind:      "VirtualMachine",
			wantShortName: "vm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.giveCRD

			require.Equal(t, tt.wantName, got.Name)
			require.Equal(t, tt.wantGroup, got.Spec.Group)
			require.Equal(t, apiextensionsv1.NamespaceScoped, got.Spec.Scope)
			require.Equal(t, tt.wantKind, got.Spec.Names.Kind)
			require.Equal(t, []string{tt.wantShortName}, got.Spec.Names.ShortNames)
			require.Len(t, got.Spec.Versions, 1)

			version := got.Spec.Versions[0]
			require.Equal(t, tt.wantVersion, version.Name)
			require.True(t, version.Served)
			require.True(t, version.Storage)
			require.NotNil(t, version.Subresources.Status)
			require.Contains(t, version.Schema.OpenAPIV3Schema.Properties, "spec")
			require.Contains(t, version.Schema.OpenAPIV3Schema.Properties, "status")
		})
	}

	require.Len(t, crd.All(), 2)
}

// statusSchemaKeys returns the status properties declared in the CRD.
func statusSchemaKeys(t *testing.T, c *apiextensionsv1.CustomResourceDefinition) map[string]apiextensionsv1.JSONSchemaProps {
	t.Helper()

	status, ok := c.Spec.Versions[0].Schema.OpenAPIV3Schema.Properties["status"]
	require.True(t, ok)

	return status.Properties
}

func patchKeys(t *testing.T, patch interface{ MergePatch() ([]byte, error) }) []string {
	t.Helper()

	data, err := patch.MergePatch()
	require.NoError(t, err)

	var doc struct {
		Status map[string]any `json:"status"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	keys := make([]string, 0, len(doc.Status))
	for key := range doc.Status {
		keys = append(keys, key)
	}

	return keys
}

func TestStatusPatchesMatchSchema(t *testing.T) {
	t.Parallel()

	state := codesandboxv1alpha1.CurrentStarted

	vmKeys := patchKeys(t, codesandboxv1alpha1.VirtualMachineStatusPatch{
		State:              &state,
		ObservedGeneration: ptr.To[int64](3),
		MemoryUsage:        ptr.To("64Mi"),
	})
	require.Len(t, vmKeys, 3)

	vmSchema := statusSchemaKeys(t, crd.VirtualMachine())
	for _, key := range vmKeys {
		require.Contains(t, vmSchema, key)
	}

	pokemonKeys := patchKeys(t, pokemonv1.PokemonStatusPatch{Alive: ptr.To(true)})
	require.Equal(t, []string{"alive"}, pokemonKeys)
	require.Contains(t, statusSchemaKeys(t, crd.Pokemon()), "alive")
}

func TestVirtualMachineStateEnums(t *testing.T) {
	t.Parallel()

	props := crd.VirtualMachine().Spec.Versions[0].Schema.OpenAPIV3Schema.Properties

	desired := props["spec"].Properties["state"]
	require.Len(t, desired.Enum, len(codesandboxv1alpha1.DesiredStates()))
	require.JSONEq(t, `"STOPPED"`, string(desired.Default.Raw))

	current := props["status"].Properties["state"]
	require.Len(t, current.Enum, len(codesandboxv1alpha1.CurrentStates()))
}

func TestRender(t *testing.T) {
	t.Parallel()

	data, err := crd.Render(crd.All()...)
	require.NoError(t, err)

	docs := bytes.Split(data, []byte("---\n"))
	require.Len(t, docs, 2)

	for i, doc := range docs {
		var got apiextensionsv1.CustomResourceDefinition
		require.NoError(t, yaml.UnmarshalStrict(doc, &got))

		require.Equal(t, "apiextensions.k8s.io/v1", got.APIVersion)
		require.Equal(t, "CustomResourceDefinition", got.Kind)
		require.Equal(t, crd.All()[i].Name, got.Name)
		require.Equal(t, crd.All()[i].Spec.Names, got.Spec.Names)
		require.Len(t, got.Spec.Versions, 1)
		require.Equal(t, crd.All()[i].Spec.Versions[0].AdditionalPrinterColumns, got.Spec.Versions[0].AdditionalPrinterColumns)
		require.NotNil(t, got.Spec.Versions[0].Subresources.Status)
	}

	require.NotContains(t, string(data), "creationTimestamp: null")
	require.NotContains(t, string(data), "storedVersions")
}
