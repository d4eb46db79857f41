package criteria

import "github.com/jakechorley/cb-team-builder/pkg/core/lineup"

// RatingCriterion rewards players with a higher personal rating on the ship.
// The bonus is Rating/scale clamped to [0, 1]; a non-positive scale disables it.
type RatingCriterion struct {
	weight float64
	scale  float64
}

// NewRatingCriterion creates a new RatingCriterion. scale is the rating that earns a full bonus.
func NewRatingCriterion(weight, scale float64) *RatingCriterion {
	return &RatingCriterion{weight: weight, scale: scale}
}

func (c *RatingCriterion) Name() string {
	return "Rating"
}

func (c *RatingCriterion) PairBonus(_ *lineup.Candidate, _ string, ownership lineup.Ownership) float64 {
	return ratio(ownership.Rating, c.scale)
}

func (c *RatingCriterion) Weight() float64 {
	return c.weight
}

// WinRateCriterion rewards players who win more often on the ship.
// WinRate is a fraction; values above 1 are read as percentages.
type WinRateCriterion struct {
	weight float64
}

// NewWinRateCriterion creates a new WinRateCriterion with the given weight
func NewWinRateCriterion(weight float64) *WinRateCriterion {
	return &WinRateCriterion{weight: weight}
}

func (c *WinRateCriterion) Name() string {
	return "WinRate"
}

func (c *WinRateCriterion) PairBonus(_ *lineup.Candidate, _ string, ownership lineup.Ownership) float64 {
	if ownership.WinRate > 1 {
		return ratio(ownership.WinRate, 100)
	}
	return ratio(ownership.WinRate, 1)
}

func (c *WinRateCriterion) Weight() float64 {
	return c.weight
}

// AverageOutputCriterion rewards players with higher average damage on the ship
type AverageOutputCriterion struct {
	weight float64
	scale  float64
}

// NewAverageOutputCriterion creates a new AverageOutputCriterion. scale is the
// average output that earns a full bonus.
func NewAverageOutputCriterion(weight, scale float64) *AverageOutputCriterion {
	return &AverageOutputCriterion{weight: weight, scale: scale}
}

func (c *AverageOutputCriterion) Name() string {
	return "AverageOutput"
}

func (c *AverageOutputCriterion) PairBonus(_ *lineup.Candidate, _ string, ownership lineup.Ownership) float64 {
	return ratio(ownership.AverageOutput, c.scale)
}

func (c *AverageOutputCriterion) Weight() float64 {
	return c.weight
}

func ratio(value, scale float64) float64 {
	if scale <= 0 || value <= 0 {
		return 0
	}
	return min(value/scale, 1)
}
