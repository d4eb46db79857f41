package criteria

import (
	"fmt"

	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
)

// Default scoring weights. A full bonus on a criterion is worth PointBudget * weight points.
const (
	// DefaultAuthorityStrongWeight applies when leadership strongly wants a player on a ship
	DefaultAuthorityStrongWeight = 0.5

	// DefaultAuthorityWeakWeight applies when leadership mildly wants a player on a ship
	DefaultAuthorityWeakWeight = 0.1

	// DefaultPriorityGroupWeight applies per ship filled by a core team member
	DefaultPriorityGroupWeight = 0.1

	// DefaultCandidatePreferredWeight applies when a player asked for the ship
	DefaultCandidatePreferredWeight = 0.1

	// Stat weights only apply when IncludeStats is set
	DefaultRatingWeight        = 1
	DefaultWinRateWeight       = 1
	DefaultAverageOutputWeight = 1

	DefaultRatingScale        = 2500
	DefaultAverageOutputScale = 150000
)

// Weights is the complete scoring configuration for one search
type Weights struct {
	PointBudget        float64
	AuthorityStrong    float64
	AuthorityWeak      float64
	PriorityGroup      float64
	CandidatePreferred float64

	// IncludeStats adds the stat criteria below to the criteria set
	IncludeStats       bool
	Rating             float64
	WinRate            float64
	AverageOutput      float64
	RatingScale        float64
	AverageOutputScale float64
}

// DefaultWeights returns the standard weights with stat criteria disabled
func DefaultWeights() Weights {
	return Weights{
		PointBudget:        lineup.DefaultPointBudget,
		AuthorityStrong:    DefaultAuthorityStrongWeight,
		AuthorityWeak:      DefaultAuthorityWeakWeight,
		PriorityGroup:      DefaultPriorityGroupWeight,
		CandidatePreferred: DefaultCandidatePreferredWeight,
		Rating:             DefaultRatingWeight,
		WinRate:            DefaultWinRateWeight,
		AverageOutput:      DefaultAverageOutputWeight,
		RatingScale:        DefaultRatingScale,
		AverageOutputScale: DefaultAverageOutputScale,
	}
}

// Validate rejects negative budgets, weights and scales
func (w Weights) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"pointBudget", w.PointBudget},
		{"authorityStrong", w.AuthorityStrong},
		{"authorityWeak", w.AuthorityWeak},
		{"priorityGroup", w.PriorityGroup},
		{"candidatePreferred", w.CandidatePreferred},
		{"rating", w.Rating},
		{"winRate", w.WinRate},
		{"averageOutput", w.AverageOutput},
		{"ratingScale", w.RatingScale},
		{"averageOutputScale", w.AverageOutputScale},
	}
	for _, v := range values {
		if v.value < 0 {
			return fmt.Errorf("%w: %s is %v", lineup.ErrInvalidWeights, v.name, v.value)
		}
	}
	return nil
}

// Build returns the criteria for the weights, in a fixed order
func Build(w Weights) ([]lineup.Criterion, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	criteria := []lineup.Criterion{
		NewAuthorityStrongCriterion(w.AuthorityStrong),
		NewAuthorityWeakCriterion(w.AuthorityWeak),
		NewPriorityGroupCriterion(w.PriorityGroup),
		NewCandidatePreferenceCriterion(w.CandidatePreferred),
	}

	if w.IncludeStats {
		criteria = append(criteria,
			NewRatingCriterion(w.Rating, w.RatingScale),
			NewWinRateCriterion(w.WinRate),
			NewAverageOutputCriterion(w.AverageOutput, w.AverageOutputScale),
		)
	}

	return criteria, nil
}

// NewEngine builds a lineup engine scoring with the weights
func NewEngine(w Weights, workers int) (*lineup.Engine, error) {
	criteria, err := Build(w)
	if err != nil {
		return nil, err
	}
	return lineup.NewEngine(lineup.EngineConfig{
		PointBudget: w.PointBudget,
		Criteria:    criteria,
		Workers:     workers,
	})
}
