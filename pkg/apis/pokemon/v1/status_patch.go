package v1

import (
	"encoding/json"
	"fmt"
)

// PokemonStatusPatch is a JSON merge patch for the Pokemon status subresource.
// Nil fields are left untouched on the server.
type PokemonStatusPatch struct {
	Alive *bool `json:"alive,omitempty"`
}

// MergePatch renders the patch as {"status": {...}}.
func (p PokemonStatusPatch) MergePatch() ([]byte, error) {
	data, err := json.Marshal(struct {
		Status PokemonStatusPatch `json:"status"`
	}{Status: p})
	if err != nil {
		return nil, fmt.Errorf("marshal pokemon status patch: %w", err)
	}

	return data, nil
}
