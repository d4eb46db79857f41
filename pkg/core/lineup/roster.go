package lineup

import (
	"fmt"
	"slices"
)

// Roster is the full set of candidates a lineup can be picked from.
// Candidate IDs and names are unique within a roster.
type Roster struct {
	candidates []*Candidate
	byID       map[string]*Candidate
	byName     map[string]*Candidate
}

// NewRoster builds and validates every candidate, failing on the first malformed
// record or duplicate ID/name.
func NewRoster(inputs []CandidateInput) (*Roster, error) {
	r := &Roster{
		candidates: make([]*Candidate, 0, len(inputs)),
		byID:       make(map[string]*Candidate, len(inputs)),
		byName:     make(map[string]*Candidate, len(inputs)),
	}

	for i, input := range inputs {
		candidate, err := NewCandidate(input)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}

		if _, exists := r.byID[candidate.ID()]; exists {
			return nil, fmt.Errorf("%w: id %q appears more than once", ErrDuplicateCandidate, candidate.ID())
		}
		if _, exists := r.byName[candidate.Name()]; exists {
			return nil, fmt.Errorf("%w: name %q appears more than once", ErrDuplicateCandidate, candidate.Name())
		}

		r.candidates = append(r.candidates, candidate)
		r.byID[candidate.ID()] = candidate
		r.byName[candidate.Name()] = candidate
	}

	return r, nil
}

// Len returns the number of candidates in the roster
func (r *Roster) Len() int {
	return len(r.candidates)
}

// Candidates returns the roster in its original order
func (r *Roster) Candidates() []*Candidate {
	return slices.Clone(r.candidates)
}

// ByName looks up a candidate by display name
func (r *Roster) ByName(name string) (*Candidate, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// ByID looks up a candidate by identifier
func (r *Roster) ByID(id string) (*Candidate, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Select resolves each key (a display name, falling back to an ID) to a candidate,
// preserving the order given. Unknown or repeated candidates are errors.
func (r *Roster) Select(keys ...string) ([]*Candidate, error) {
	selected := make([]*Candidate, 0, len(keys))
	seen := make(map[string]bool, len(keys))

	for _, key := range keys {
		candidate, ok := r.byName[key]
		if !ok {
			candidate, ok = r.byID[key]
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCandidate, key)
		}

		if seen[candidate.ID()] {
			return nil, fmt.Errorf("%w: %q selected more than once", ErrDuplicateCandidate, candidate.Name())
		}
		seen[candidate.ID()] = true

		selected = append(selected, candidate)
	}

	return selected, nil
}
