package criteria

import (
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
)

// Type aliases for test readability - shared across all criterion tests
type (
	Candidate      = lineup.Candidate
	CandidateInput = lineup.CandidateInput
	Ownership      = lineup.Ownership
)

func candidate(priority bool) *Candidate {
	return lineup.MustCandidate(CandidateInput{ID: "1", Name: "Alice", PriorityGroup: priority, Resources: map[string]Ownership{}})
}
