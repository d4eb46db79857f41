package lineup

// Criterion is one weighted preference that contributes to an assignment's score.
// Criteria never affect feasibility: ownership is checked by the scorer before any
// criterion runs.
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// PairBonus returns how strongly this criterion favours placing the candidate
	// on the resource. Returns a value between 0.0 and 1.0 that will be multiplied
	// by the criterion's weight and the point budget.
	// Only called for pairs where the candidate owns the resource.
	PairBonus(candidate *Candidate, resource string, ownership Ownership) float64

	// Weight returns the multiplier for this criterion's bonus
	Weight() float64
}
