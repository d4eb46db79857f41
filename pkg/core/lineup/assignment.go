package lineup

import (
	"fmt"
	"slices"
	"strings"
)

// Pair places one candidate in one slot
type Pair struct {
	Candidate *Candidate
	Resource  string
}

func (p Pair) String() string {
	return fmt.Sprintf("%s (%s)", p.Candidate.Name(), p.Resource)
}

// Assignment is one complete candidate-to-slot mapping. Pairs are in slot order.
// The score is computed once at construction and never changes.
type Assignment struct {
	id    int
	pairs []Pair
	score Score
}

// NewAssignment scores the pairs and returns the resulting assignment
func NewAssignment(id int, pairs []Pair, scorer *Scorer) *Assignment {
	return &Assignment{
		id:    id,
		pairs: slices.Clone(pairs),
		score: scorer.Score(pairs),
	}
}

// ID is the 1-based position of the assignment in enumeration order
func (a *Assignment) ID() int {
	return a.id
}

func (a *Assignment) Score() Score {
	return a.score
}

func (a *Assignment) Len() int {
	return len(a.pairs)
}

// Pair returns the pair for slot i
func (a *Assignment) Pair(i int) Pair {
	return a.pairs[i]
}

// Pairs returns a copy of the pairs in slot order
func (a *Assignment) Pairs() []Pair {
	return slices.Clone(a.pairs)
}

func (a *Assignment) String() string {
	parts := make([]string, len(a.pairs))
	for i, p := range a.pairs {
		parts[i] = p.String()
	}
	return fmt.Sprintf("#%d [%s] score=%s", a.id, strings.Join(parts, ", "), a.score)
}
