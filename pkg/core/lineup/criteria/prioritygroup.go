package criteria

import "github.com/jakechorley/cb-team-builder/pkg/core/lineup"

// PriorityGroupCriterion gives core team members a bonus on every ship they fill,
// so lineups with more of the core team rank higher.
type PriorityGroupCriterion struct {
	weight float64
}

// NewPriorityGroupCriterion creates a new PriorityGroupCriterion with the given weight
func NewPriorityGroupCriterion(weight float64) *PriorityGroupCriterion {
	return &PriorityGroupCriterion{weight: weight}
}

func (c *PriorityGroupCriterion) Name() string {
	return "PriorityGroup"
}

func (c *PriorityGroupCriterion) PairBonus(candidate *lineup.Candidate, _ string, _ lineup.Ownership) float64 {
	return boolBonus(candidate.PriorityGroup())
}

func (c *PriorityGroupCriterion) Weight() float64 {
	return c.weight
}
