package criteria

import "github.com/jakechorley/cb-team-builder/pkg/core/lineup"

// AuthorityStrongCriterion rewards placing a player on a ship clan leadership
// strongly wants them on.
//
// Bonus:
//   - 1.0 when the ownership record has AuthorityStrongPreference set
//   - 0 otherwise
type AuthorityStrongCriterion struct {
	weight float64
}

// NewAuthorityStrongCriterion creates a new AuthorityStrongCriterion with the given weight
func NewAuthorityStrongCriterion(weight float64) *AuthorityStrongCriterion {
	return &AuthorityStrongCriterion{weight: weight}
}

func (c *AuthorityStrongCriterion) Name() string {
	return "AuthorityStrong"
}

func (c *AuthorityStrongCriterion) PairBonus(_ *lineup.Candidate, _ string, ownership lineup.Ownership) float64 {
	return boolBonus(ownership.AuthorityStrongPreference)
}

func (c *AuthorityStrongCriterion) Weight() float64 {
	return c.weight
}

// AuthorityWeakCriterion is the weaker counterpart of AuthorityStrongCriterion.
// Both flags can be set on the same record, in which case both bonuses apply.
type AuthorityWeakCriterion struct {
	weight float64
}

// NewAuthorityWeakCriterion creates a new AuthorityWeakCriterion with the given weight
func NewAuthorityWeakCriterion(weight float64) *AuthorityWeakCriterion {
	return &AuthorityWeakCriterion{weight: weight}
}

func (c *AuthorityWeakCriterion) Name() string {
	return "AuthorityWeak"
}

func (c *AuthorityWeakCriterion) PairBonus(_ *lineup.Candidate, _ string, ownership lineup.Ownership) float64 {
	return boolBonus(ownership.AuthorityWeakPreference)
}

func (c *AuthorityWeakCriterion) Weight() float64 {
	return c.weight
}

func boolBonus(set bool) float64 {
	if set {
		return 1
	}
	return 0
}
