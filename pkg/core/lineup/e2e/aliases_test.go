package e2e

import (
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup/criteria"
)

// Type aliases to avoid prefixing everything with lineup.
type (
	Candidate      = lineup.Candidate
	CandidateInput = lineup.CandidateInput
	Ownership      = lineup.Ownership
	SlotSpec       = lineup.SlotSpec
	Assignment     = lineup.Assignment
	Pair           = lineup.Pair
	SearchResult   = lineup.SearchResult
	Weights        = criteria.Weights
)

// Function aliases
var (
	MustCandidate           = lineup.MustCandidate
	MustSlotSpec            = lineup.MustSlotSpec
	NewRoster               = lineup.NewRoster
	PermutationCount        = lineup.PermutationCount
	ResourceOwnershipCounts = lineup.ResourceOwnershipCounts
	ScarcityPriorityOrder   = lineup.ScarcityPriorityOrder
	DefaultWeights          = criteria.DefaultWeights
	NewEngine               = criteria.NewEngine
)
