package lineup

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Ownership is a candidate's record for a single resource. Having a record at all
// is what makes a candidate eligible for a slot requiring that resource.
type Ownership struct {
	// Available indicates the candidate can currently use the resource.
	// It does not affect eligibility.
	Available bool

	// CandidatePrefers is set when the candidate asked to use this resource
	CandidatePrefers bool

	// AuthorityStrongPreference and AuthorityWeakPreference are set when clan
	// leadership wants this candidate on this resource. They are independent.
	AuthorityStrongPreference bool
	AuthorityWeakPreference   bool

	// Legendary indicates the candidate has the legendary module fitted
	Legendary bool

	// Resource specific statistics. Only read by the optional stat criteria.
	Rating        float64
	WinRate       float64
	AverageOutput float64
	Battles       int
}

// CandidateInput is the raw record a Candidate is built from
type CandidateInput struct {
	ID            string               `validate:"required"`
	Name          string               `validate:"required"`
	PriorityGroup bool
	Resources     map[string]Ownership `validate:"required"`
}

// Candidate is a person who can be assigned to a slot.
// Candidates are immutable once created so they can be shared across assignments
// and concurrent searches without copying.
type Candidate struct {
	id            string
	name          string
	priorityGroup bool
	resources     map[string]Ownership
}

// NewCandidate validates the input and builds an immutable Candidate.
// A nil resource map is rejected; an empty one is allowed (the candidate owns nothing).
func NewCandidate(input CandidateInput) (*Candidate, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedCandidate, input.Name, err)
	}

	for resource := range input.Resources {
		if resource == "" {
			return nil, fmt.Errorf("%w: %q has an ownership record with no resource", ErrMalformedCandidate, input.Name)
		}
	}

	return &Candidate{
		id:            input.ID,
		name:          input.Name,
		priorityGroup: input.PriorityGroup,
		resources:     maps.Clone(input.Resources),
	}, nil
}

// MustCandidate is like NewCandidate but panics on invalid input. Intended for tests
// and static fixtures.
func MustCandidate(input CandidateInput) *Candidate {
	c, err := NewCandidate(input)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Candidate) ID() string {
	return c.id
}

func (c *Candidate) Name() string {
	return c.name
}

// PriorityGroup reports whether the candidate is a core team member
func (c *Candidate) PriorityGroup() bool {
	return c.priorityGroup
}

// Ownership returns the candidate's record for a resource, if they own it
func (c *Candidate) Ownership(resource string) (Ownership, bool) {
	o, ok := c.resources[resource]
	return o, ok
}

// Owns reports whether the candidate has an ownership record for the resource
func (c *Candidate) Owns(resource string) bool {
	_, ok := c.resources[resource]
	return ok
}

// Resources returns the owned resource identifiers in sorted order
func (c *Candidate) Resources() []string {
	return slices.Sorted(maps.Keys(c.resources))
}

func (c *Candidate) String() string {
	return c.name
}
