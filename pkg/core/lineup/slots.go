package lineup

import (
	"fmt"
	"slices"
	"strings"
)

// SlotSpec is the ordered list of resources a lineup must fill, one per slot.
// A resource may be required by more than one slot.
type SlotSpec struct {
	resources []string
}

// NewSlotSpec copies the resources into a new specification.
// At least one slot is required and no resource may be blank.
func NewSlotSpec(resources ...string) (SlotSpec, error) {
	if len(resources) == 0 {
		return SlotSpec{}, ErrEmptySlots
	}

	for i, resource := range resources {
		if strings.TrimSpace(resource) == "" {
			return SlotSpec{}, fmt.Errorf("%w: slot %d has no resource", ErrInvalidSlot, i)
		}
	}

	return SlotSpec{resources: slices.Clone(resources)}, nil
}

// MustSlotSpec is like NewSlotSpec but panics on invalid input
func MustSlotSpec(resources ...string) SlotSpec {
	spec, err := NewSlotSpec(resources...)
	if err != nil {
		panic(err)
	}
	return spec
}

// Len returns the number of slots (the team size)
func (s SlotSpec) Len() int {
	return len(s.resources)
}

// Resource returns the resource required by slot i
func (s SlotSpec) Resource(i int) string {
	return s.resources[i]
}

// Resources returns a copy of the slot resources in order
func (s SlotSpec) Resources() []string {
	return slices.Clone(s.resources)
}

// Distinct returns each resource once, in order of first appearance
func (s SlotSpec) Distinct() []string {
	seen := make(map[string]bool, len(s.resources))
	distinct := make([]string, 0, len(s.resources))
	for _, resource := range s.resources {
		if seen[resource] {
			continue
		}
		seen[resource] = true
		distinct = append(distinct, resource)
	}
	return distinct
}

// Count returns how many slots require the resource
func (s SlotSpec) Count(resource string) int {
	count := 0
	for _, r := range s.resources {
		if r == resource {
			count++
		}
	}
	return count
}

func (s SlotSpec) String() string {
	return strings.Join(s.resources, ", ")
}

// DefaultTargetLineup is the clan battle composition used when none is configured
func DefaultTargetLineup() []string {
	return []string{"Kremlin", "Yamato", "Smolensk", "Moskva", "Des Moines", "Kleber", "Kleber", "Gearing"}
}
