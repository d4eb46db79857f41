package lineup

// mockCriterion returns a fixed bonus for pairs matching bonusFor
type mockCriterion struct {
	name     string
	weight   float64
	bonusFor func(candidate *Candidate, resource string, ownership Ownership) float64
}

func (m *mockCriterion) Name() string {
	return m.name
}

func (m *mockCriterion) PairBonus(candidate *Candidate, resource string, ownership Ownership) float64 {
	if m.bonusFor == nil {
		return 0
	}
	return m.bonusFor(candidate, resource, ownership)
}

func (m *mockCriterion) Weight() float64 {
	return m.weight
}

// prefersCriterion mirrors the candidate preference bonus
func prefersCriterion(weight float64) *mockCriterion {
	return &mockCriterion{
		name:   "Prefers",
		weight: weight,
		bonusFor: func(_ *Candidate, _ string, o Ownership) float64 {
			if o.CandidatePrefers {
				return 1
			}
			return 0
		},
	}
}

// owner builds a candidate owning the given resources with default flags
func owner(id string, resources ...string) *Candidate {
	owned := make(map[string]Ownership, len(resources))
	for _, r := range resources {
		owned[r] = Ownership{Available: true}
	}
	return MustCandidate(CandidateInput{ID: id, Name: id, Resources: owned})
}
