package v1alpha1

import (
	"encoding/json"
	"fmt"
)

// VirtualMachineStatusPatch is a JSON merge patch for the VirtualMachine status
// subresource. Nil fields are left untouched; Conditions are deliberately absent.
type VirtualMachineStatusPatch struct {
	State              *VirtualMachineCurrentState `json:"state,omitempty"`
	ObservedGeneration *int64                      `json:"observedGeneration,omitempty"`

	// An empty string clears the field.
	MemoryUsage *string `json:"memoryUsage,omitempty"`
}

// MergePatch renders the patch as {"status": {...}}.
func (p VirtualMachineStatusPatch) MergePatch() ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal virtualmachine status patch: %w", err)
	}

	status := map[string]any{}
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("unmarshal virtualmachine status patch: %w", err)
	}

	if p.MemoryUsage != nil && *p.MemoryUsage == "" {
		status["memoryUsage"] = nil
	}

	data, err := json.Marshal(map[string]any{"status": status})
	if err != nil {
		return nil, fmt.Errorf("marshal virtualmachine status patch: %w", err)
	}

	return data, nil
}
