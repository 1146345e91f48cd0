package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// PokemonKind is the kind name of the Pokemon resource.
	PokemonKind = "Pokemon"

	// PokemonPlural is the resource name used in API paths.
	PokemonPlural = "pokemons"

	// PokemonShortName is the kubectl short name.
	PokemonShortName = "poke"

	// PokemonFinalizer guards Pokemon deletion until cleanup has run.
	PokemonFinalizer = "pokemon.pokemon.rs"
)

// PokemonSpec is the desired state of a Pokemon.
type PokemonSpec struct {
	Name   string `json:"name"`
	Health uint16 `json:"health"`
}

// PokemonStatus is the observed state of a Pokemon.
type PokemonStatus struct {
	Alive bool `json:"alive"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=poke

// Pokemon is the toy resource used to exercise the finalizer protocol.
type Pokemon struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PokemonSpec   `json:"spec,omitempty"`
	Status PokemonStatus `json:"status,omitempty"`
}

// IsAlive reports the last observed liveness.
func (p *Pokemon) IsAlive() bool {
	return p.Status.Alive
}

// +kubebuilder:object:root=true

// PokemonList contains a list of Pokemon.
type PokemonList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []Pokemon `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Pokemon{}, &PokemonList{})
}
