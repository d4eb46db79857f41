package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorityCriteria(t *testing.T) {
	strong := NewAuthorityStrongCriterion(0.5)
	weak := NewAuthorityWeakCriterion(0.1)
	c := candidate(false)

	assert.Equal(t, "AuthorityStrong", strong.Name())
	assert.Equal(t, 0.5, strong.Weight())
	assert.Equal(t, "AuthorityWeak", weak.Name())
	assert.Equal(t, 0.1, weak.Weight())

	both := Ownership{AuthorityStrongPreference: true, AuthorityWeakPreference: true}
	assert.Equal(t, 1.0, strong.PairBonus(c, "X", both))
	assert.Equal(t, 1.0, weak.PairBonus(c, "X", both))

	assert.Equal(t, 0.0, strong.PairBonus(c, "X", Ownership{AuthorityWeakPreference: true}))
	assert.Equal(t, 0.0, weak.PairBonus(c, "X", Ownership{AuthorityStrongPreference: true}))
}

func TestPriorityGroupCriterion(t *testing.T) {
	crit := NewPriorityGroupCriterion(0.1)

	assert.Equal(t, "PriorityGroup", crit.Name())
	assert.Equal(t, 1.0, crit.PairBonus(candidate(true), "X", Ownership{}))
	assert.Equal(t, 0.0, crit.PairBonus(candidate(false), "X", Ownership{CandidatePrefers: true}))
}

func TestCandidatePreferenceCriterion(t *testing.T) {
	crit := NewCandidatePreferenceCriterion(0.1)

	assert.Equal(t, "CandidatePreference", crit.Name())
	assert.Equal(t, 1.0, crit.PairBonus(candidate(false), "X", Ownership{CandidatePrefers: true}))
	assert.Equal(t, 0.0, crit.PairBonus(candidate(true), "X", Ownership{}))
}

func TestStatCriteria(t *testing.T) {
	c := candidate(false)

	rating := NewRatingCriterion(1, 2000)
	assert.Equal(t, "Rating", rating.Name())
	assert.InDelta(t, 0.5, rating.PairBonus(c, "X", Ownership{Rating: 1000}), 1e-9)
	assert.Equal(t, 1.0, rating.PairBonus(c, "X", Ownership{Rating: 3000}))
	assert.Equal(t, 0.0, rating.PairBonus(c, "X", Ownership{}))
	assert.Equal(t, 0.0, NewRatingCriterion(1, 0).PairBonus(c, "X", Ownership{Rating: 1000}))

	winRate := NewWinRateCriterion(1)
	assert.InDelta(t, 0.55, winRate.PairBonus(c, "X", Ownership{WinRate: 0.55}), 1e-9)
	assert.InDelta(t, 0.55, winRate.PairBonus(c, "X", Ownership{WinRate: 55}), 1e-9)

	output := NewAverageOutputCriterion(1, 100000)
	assert.Equal(t, "AverageOutput", output.Name())
	assert.InDelta(t, 0.75, output.PairBonus(c, "X", Ownership{AverageOutput: 75000}), 1e-9)
}
