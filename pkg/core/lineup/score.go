package lineup

import (
	"cmp"
	"strconv"
)

// Score is the result of scoring an assignment. An infeasible score has no value:
// it marks an assignment that breaks the ownership constraint and must never be
// compared numerically with feasible ones.
type Score struct {
	value    float64
	feasible bool
}

// FeasibleScore wraps a numeric score
func FeasibleScore(value float64) Score {
	return Score{value: value, feasible: true}
}

// InfeasibleScore returns the score of an assignment that violates ownership
func InfeasibleScore() Score {
	return Score{}
}

func (s Score) Feasible() bool {
	return s.feasible
}

// Value returns the numeric score and whether it is feasible
func (s Score) Value() (float64, bool) {
	return s.value, s.feasible
}

// Compare orders scores ascending. Infeasible scores sort below every feasible
// score and are equal to each other.
func (s Score) Compare(other Score) int {
	switch {
	case !s.feasible && !other.feasible:
		return 0
	case !s.feasible:
		return -1
	case !other.feasible:
		return 1
	}
	return cmp.Compare(s.value, other.value)
}

func (s Score) String() string {
	if !s.feasible {
		return "infeasible"
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}
