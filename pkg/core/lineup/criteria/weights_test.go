package criteria

import (
	"testing"

	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criterionNames(criteria []lineup.Criterion) []string {
	names := make([]string, len(criteria))
	for i, c := range criteria {
		names[i] = c.Name()
	}
	return names
}

func TestBuild_Defaults(t *testing.T) {
	criteria, err := Build(DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, []string{"AuthorityStrong", "AuthorityWeak", "PriorityGroup", "CandidatePreference"}, criterionNames(criteria))
	assert.Equal(t, 0.5, criteria[0].Weight())
	assert.Equal(t, 0.1, criteria[1].Weight())
	assert.Equal(t, 0.1, criteria[2].Weight())
	assert.Equal(t, 0.1, criteria[3].Weight())
}

func TestBuild_IncludeStats(t *testing.T) {
	w := DefaultWeights()
	w.IncludeStats = true

	criteria, err := Build(w)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"AuthorityStrong", "AuthorityWeak", "PriorityGroup", "CandidatePreference",
		"Rating", "WinRate", "AverageOutput",
	}, criterionNames(criteria))
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())

	w := DefaultWeights()
	w.AuthorityWeak = -0.1
	assert.ErrorIs(t, w.Validate(), lineup.ErrInvalidWeights)

	w = DefaultWeights()
	w.PointBudget = -1
	_, err := Build(w)
	assert.ErrorIs(t, err, lineup.ErrInvalidWeights)
}

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine(DefaultWeights(), 2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, engine.Scorer().PointBudget())
	assert.Len(t, engine.Scorer().Criteria(), 4)
}

func TestDefaultScoring(t *testing.T) {
	scorer, err := lineup.NewScorer(100, mustBuild(t, DefaultWeights()))
	require.NoError(t, err)

	// Core team player on a ship leadership strongly wants them on, which they also prefer
	alice := lineup.MustCandidate(CandidateInput{ID: "1", Name: "Alice", PriorityGroup: true, Resources: map[string]Ownership{
		"X": {AuthorityStrongPreference: true, CandidatePrefers: true},
	}})
	// Non-core player with a weak leadership preference
	bob := lineup.MustCandidate(CandidateInput{ID: "2", Name: "Bob", Resources: map[string]Ownership{
		"Y": {AuthorityWeakPreference: true},
	}})

	v, ok := scorer.Score([]lineup.Pair{{Candidate: alice, Resource: "X"}, {Candidate: bob, Resource: "Y"}}).Value()
	require.True(t, ok)
	// Alice: 50 + 10 + 10, Bob: 10
	assert.InDelta(t, 80.0, v, 1e-9)
}

func mustBuild(t *testing.T, w Weights) []lineup.Criterion {
	t.Helper()
	criteria, err := Build(w)
	require.NoError(t, err)
	return criteria
}
