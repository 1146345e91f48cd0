// Package crd builds the CustomResourceDefinitions served by the controller.
package crd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

const maxPort = 65535

// All returns every CRD in install order.
func All() []*apiextensionsv1.CustomResourceDefinition {
	return []*apiextensionsv1.CustomResourceDefinition{
		Pokemon(),
		VirtualMachine(),
	}
}

// Pokemon returns the pokemons.pokemon.rs CRD.
func Pokemon() *apiextensionsv1.CustomResourceDefinition {
	return newCRD(
		pokemonv1.GroupVersion,
		apiextensionsv1.CustomResourceDefinitionNames{
			Kind:       pokemonv1.PokemonKind,
			ListKind:   pokemonv1.PokemonKind + "List",
			Plural:     pokemonv1.PokemonPlural,
			Singular:   strings.ToLower(pokemonv1.PokemonKind),
			ShortNames: []string{pokemonv1.PokemonShortName},
		},
		apiextensionsv1.JSONSchemaProps{
			Type:     "object",
			Required: []string{"name", "health"},
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"name": {Type: "string"},
				"health": {
					Type:    "integer",
					Minimum: ptr.To(0.0),
					Maximum: ptr.To(float64(^uint16(0))),
				},
			},
		},
		apiextensionsv1.JSONSchemaProps{
			Type: "object",
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"alive": {Type: "boolean"},
			},
		},
		[]apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Health", Type: "integer", JSONPath: ".spec.health"},
			{Name: "Alive", Type: "boolean", JSONPath: ".status.alive"},
		},
	)
}

// VirtualMachine returns the virtualmachines.codesandbox.io CRD.
func VirtualMachine() *apiextensionsv1.CustomResourceDefinition {
	return newCRD(
		codesandboxv1alpha1.GroupVersion,
		apiextensionsv1.CustomResourceDefinitionNames{
			Kind:       codesandboxv1alpha1.VirtualMachineKind,
			ListKind:   codesandboxv1alpha1.VirtualMachineKind + "List",
			Plural:     codesandboxv1alpha1.VirtualMachinePlural,
			Singular:   strings.ToLower(codesandboxv1alpha1.VirtualMachineKind),
			ShortNames: []string{codesandboxv1alpha1.VirtualMachineShortName},
		},
		apiextensionsv1.JSONSchemaProps{
			Type:     "object",
			Required: []string{"image"},
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"image": {Type: "string", MinLength: ptr.To[int64](1)},
				"state": {
					Type:    "string",
					Default: &apiextensionsv1.JSON{Raw: []byte(`"` + codesandboxv1alpha1.DesiredStopped + `"`)},
					Enum:    enum(codesandboxv1alpha1.DesiredStates()),
				},
				"port": {
					Type:    "integer",
					Format:  "int32",
					Minimum: ptr.To(1.0),
					Maximum: ptr.To(float64(maxPort)),
				},
			},
		},
		apiextensionsv1.JSONSchemaProps{
			Type: "object",
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"state":              {Type: "string", Enum: enum(codesandboxv1alpha1.CurrentStates())},
				"observedGeneration": {Type: "integer", Format: "int64"},
				"memoryUsage":        {Type: "string"},
				"conditions":         conditionsSchema(),
			},
		},
		[]apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Image", Type: "string", JSONPath: ".spec.image"},
			{Name: "Desired", Type: "string", JSONPath: ".spec.state"},
			{Name: "State", Type: "string", JSONPath: ".status.state"},
			{Name: "Memory", Type: "string", JSONPath: ".status.memoryUsage", Priority: 1},
		},
	)
}

// Render prints crds as a multi-document YAML stream, ready for kubectl apply.
func Render(crds ...*apiextensionsv1.CustomResourceDefinition) ([]byte, error) {
	var buf bytes.Buffer

	for i, crd := range crds {
		raw, err := json.Marshal(crd)
		if err != nil {
			return nil, fmt.Errorf("marshal crd %s: %w", crd.Name, err)
		}

		obj := map[string]any{}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("unmarshal crd %s: %w", crd.Name, err)
		}

		delete(obj, "status")

		if metadata, ok := obj["metadata"].(map[string]any); ok {
			delete(metadata, "creationTimestamp")
		}

		data, err := yaml.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("render crd %s: %w", crd.Name, err)
		}

		if i > 0 {
			buf.WriteString("---\n")
		}

		buf.Write(data)
	}

	return buf.Bytes(), nil
}

func newCRD(
	gv schema.GroupVersion,
	names apiextensionsv1.CustomResourceDefinitionNames,
	spec apiextensionsv1.JSONSchemaProps,
	status apiextensionsv1.JSONSchemaProps,
	columns []apiextensionsv1.CustomResourceColumnDefinition,
) *apiextensionsv1.CustomResourceDefinition {
	columns = append(columns, apiextensionsv1.CustomResourceColumnDefinition{
		Name:     "Age",
		Type:     "date",
		JSONPath: ".metadata.creationTimestamp",
	})

	return &apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: apiextensionsv1.SchemeGroupVersion.String(),
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: names.Plural + "." + gv.Group,
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: gv.Group,
			Names: names,
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{{
				Name:    gv.Version,
				Served:  true,
				Storage: true,
				Schema: &apiextensionsv1.CustomResourceValidation{
					OpenAPIV3Schema: &apiextensionsv1.JSONSchemaProps{
						Type:     "object",
						Required: []string{"spec"},
						Properties: map[string]apiextensionsv1.JSONSchemaProps{
							"apiVersion": {Type: "string"},
							"kind":       {Type: "string"},
							"metadata":   {Type: "object"},
							"spec":       spec,
							"status":     status,
						},
					},
				},
				Subresources: &apiextensionsv1.CustomResourceSubresources{
					Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
				},
				AdditionalPrinterColumns: columns,
			}},
		},
	}
}

func conditionsSchema() apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:         "array",
		XListType:    ptr.To("map"),
		XListMapKeys: []string{"type"},
		Items: &apiextensionsv1.JSONSchemaPropsOrArray{
			Schema: &apiextensionsv1.JSONSchemaProps{
				Type:     "object",
				Required: []string{"type", "status", "lastTransitionTime", "reason", "message"},
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"type":               {Type: "string"},
					"status":             {Type: "string", Enum: enum([]metav1.ConditionStatus{metav1.ConditionTrue, metav1.ConditionFalse, metav1.ConditionUnknown})},
					"observedGeneration": {Type: "integer", Format: "int64"},
					"lastTransitionTime": {Type: "string", Format: "date-time"},
					"reason":             {Type: "string"},
					"message":            {Type: "string"},
				},
			},
		},
	}
}

func enum[T ~string](values []T) []apiextensionsv1.JSON {
	out := make([]apiextensionsv1.JSON, 0, len(values))
	for _, v := range values {
		out = append(out, apiextensionsv1.JSON{Raw: []byte(`"` + string(v) + `"`)})
	}

	return out
}
