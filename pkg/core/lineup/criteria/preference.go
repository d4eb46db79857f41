package criteria

import "github.com/jakechorley/cb-team-builder/pkg/core/lineup"

// CandidatePreferenceCriterion rewards putting players on ships they asked to play
type CandidatePreferenceCriterion struct {
	weight float64
}

// NewCandidatePreferenceCriterion creates a new CandidatePreferenceCriterion with the given weight
func NewCandidatePreferenceCriterion(weight float64) *CandidatePreferenceCriterion {
	return &CandidatePreferenceCriterion{weight: weight}
}

func (c *CandidatePreferenceCriterion) Name() string {
	return "CandidatePreference"
}

func (c *CandidatePreferenceCriterion) PairBonus(_ *lineup.Candidate, _ string, ownership lineup.Ownership) float64 {
	return boolBonus(ownership.CandidatePrefers)
}

func (c *CandidatePreferenceCriterion) Weight() float64 {
	return c.weight
}
