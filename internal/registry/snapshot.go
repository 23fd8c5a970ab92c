package registry

import (
	"errors"
	"fmt"
)

// Snapshot is a frozen copy of a block registry together with the lookup from
// state names to the resource models that render them.
type Snapshot struct {
	Version string                   `json:"version"`
	Blocks  []Block                  `json:"blocks"`
	Models  map[string]ResourceModel `json:"models"`
}

// ResourceModel identifies the asset used to draw a state.
type ResourceModel struct {
	Path    string `json:"path"`
	Variant string `json:"variant"`
}

// ModelLookup returns the state to resource-model table. The returned map is
// never nil.
func (s *Snapshot) ModelLookup() map[string]ResourceModel {
	out := make(map[string]ResourceModel, len(s.Models))
	for k, v := range s.Models {
		out[k] = v
	}
	return out
}

// Validate checks structural consistency. All problems are reported at once.
func (s *Snapshot) Validate() error {
	var errs []error
	ids := make(map[int]string, len(s.Blocks))
	names := make(map[string]bool, len(s.Blocks))

	for i := range s.Blocks {
		b := &s.Blocks[i]
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("block #%d (id %d): empty name", i, b.ID))
		}
		if prev, ok := ids[b.ID]; ok {
			errs = append(errs, fmt.Errorf("block %s: id %d already used by %s", b.Name, b.ID, prev))
		}
		ids[b.ID] = b.Name
		if names[b.Name] {
			errs = append(errs, fmt.Errorf("block %s: duplicate name", b.Name))
		}
		names[b.Name] = true

		if b.DefaultState == "" {
			errs = append(errs, fmt.Errorf("block %s: no default state", b.Name))
		} else if _, ok := b.State(b.DefaultState); !ok {
			errs = append(errs, fmt.Errorf("block %s: default state %q not declared", b.Name, b.DefaultState))
		}

		for _, ms := range b.MetaStates {
			if ms.Meta < 0 || ms.Meta >= MetaCount {
				errs = append(errs, fmt.Errorf("block %s: meta %d out of range", b.Name, ms.Meta))
			}
		}
	}

	return errors.Join(errs...)
}
