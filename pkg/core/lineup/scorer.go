package lineup

import "fmt"

// DefaultPointBudget is the base number of points a full bonus is worth
const DefaultPointBudget = 100.0

// Scorer turns a list of pairs into a Score using a fixed point budget and set of
// criteria. A Scorer holds no mutable state and is safe for concurrent use.
type Scorer struct {
	pointBudget float64
	criteria    []Criterion
}

// NewScorer validates the budget and criteria weights
func NewScorer(pointBudget float64, criteria []Criterion) (*Scorer, error) {
	if pointBudget < 0 {
		return nil, fmt.Errorf("%w: point budget %v is negative", ErrInvalidWeights, pointBudget)
	}
	for _, criterion := range criteria {
		if criterion == nil {
			return nil, fmt.Errorf("%w: nil criterion", ErrInvalidWeights)
		}
		if criterion.Weight() < 0 {
			return nil, fmt.Errorf("%w: %s has negative weight %v", ErrInvalidWeights, criterion.Name(), criterion.Weight())
		}
	}

	return &Scorer{
		pointBudget: pointBudget,
		criteria:    append([]Criterion(nil), criteria...),
	}, nil
}

func (s *Scorer) PointBudget() float64 {
	return s.pointBudget
}

// Criteria returns the names of the configured criteria in evaluation order
func (s *Scorer) Criteria() []string {
	names := make([]string, len(s.criteria))
	for i, criterion := range s.criteria {
		names[i] = criterion.Name()
	}
	return names
}

// Score computes the assignment score for the pairs.
//
// Returns InfeasibleScore as soon as any candidate does not own their resource.
// Otherwise returns the sum over pairs and criteria of budget * weight * bonus.
func (s *Scorer) Score(pairs []Pair) Score {
	total := 0.0
	for _, pair := range pairs {
		ownership, ok := pair.Candidate.Ownership(pair.Resource)
		if !ok {
			return InfeasibleScore()
		}

		total += s.pairScore(pair, ownership)
	}

	return FeasibleScore(total)
}

func (s *Scorer) pairScore(pair Pair, ownership Ownership) float64 {
	score := 0.0
	for _, criterion := range s.criteria {
		bonus := criterion.PairBonus(pair.Candidate, pair.Resource, ownership)
		score += s.pointBudget * criterion.Weight() * bonus
	}
	return score
}
