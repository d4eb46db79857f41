package lineup

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// EngineConfig holds everything a search needs besides its input
type EngineConfig struct {
	// PointBudget is the number of points a criterion bonus of 1.0 with weight 1.0 is worth
	PointBudget float64

	// Criteria are summed for every pair of a feasible assignment
	Criteria []Criterion

	// Workers is the number of goroutines used to score orderings.
	// Values below 2 run the search on the calling goroutine.
	Workers int
}

// SearchResult is the outcome of one search.
// DiscardedCount + len(Lineups) == TotalCount always holds.
type SearchResult struct {
	// Lineups are the feasible assignments, best score first. Equal scores keep
	// enumeration order.
	Lineups []*Assignment

	// DiscardedCount is the number of orderings dropped for breaking ownership
	DiscardedCount int

	// TotalCount is the number of orderings enumerated
	TotalCount int
}

// Top returns at most n of the best lineups. n <= 0 returns all of them.
func (r *SearchResult) Top(n int) []*Assignment {
	if n <= 0 || n >= len(r.Lineups) {
		return r.Lineups
	}
	return r.Lineups[:n]
}

// Engine enumerates and ranks every assignment of a candidate subset to a slot specification.
// An Engine is immutable and can run concurrent searches.
type Engine struct {
	scorer  *Scorer
	workers int
}

// NewEngine validates the configuration and builds an engine
func NewEngine(cfg EngineConfig) (*Engine, error) {
	scorer, err := NewScorer(cfg.PointBudget, cfg.Criteria)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Engine{scorer: scorer, workers: workers}, nil
}

func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// partition is a contiguous run of the enumeration. first fixes the candidate in
// slot 0 (-1 for all of them) and offset is the number of orderings before it.
type partition struct {
	first  int
	offset int
}

type partitionResult struct {
	lineups   []*Assignment
	discarded int
	total     int
}

// GenerateLineups scores every ordering of candidates against slots and returns the
// feasible ones ranked best first.
//
// Orderings are enumerated in lexicographic order of candidate positions and
// assignment IDs follow that order starting at 1. The result is identical for any
// number of workers.
//
// The search is exhaustive: its cost grows with len(candidates)! and it is intended
// for single-digit slot counts.
func (e *Engine) GenerateLineups(ctx context.Context, candidates []*Candidate, slots SlotSpec) (*SearchResult, error) {
	if slots.Len() == 0 {
		return nil, ErrEmptySlots
	}
	if len(candidates) != slots.Len() {
		return nil, fmt.Errorf("%w: %d candidates for %d slots", ErrSizeMismatch, len(candidates), slots.Len())
	}

	seen := make(map[string]bool, len(candidates))
	for i, candidate := range candidates {
		if candidate == nil {
			return nil, fmt.Errorf("%w: candidate %d is nil", ErrMalformedCandidate, i)
		}
		if seen[candidate.ID()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCandidate, candidate.Name())
		}
		seen[candidate.ID()] = true
	}

	pool := slices.Clone(candidates)
	partitions := e.partitions(len(pool), slots.Len())
	results := make([]partitionResult, len(partitions))

	if len(partitions) == 1 {
		result, err := e.searchPartition(ctx, pool, slots, partitions[0])
		if err != nil {
			return nil, err
		}
		results[0] = result
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.workers)
		for i, part := range partitions {
			g.Go(func() error {
				result, err := e.searchPartition(gctx, pool, slots, part)
				if err != nil {
					return err
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	searchResult := &SearchResult{}
	for _, result := range results {
		searchResult.Lineups = append(searchResult.Lineups, result.lineups...)
		searchResult.DiscardedCount += result.discarded
		searchResult.TotalCount += result.total
	}

	// Stable so equal scores stay in enumeration order
	slices.SortStableFunc(searchResult.Lineups, func(a, b *Assignment) int {
		return b.score.Compare(a.score)
	})

	return searchResult, nil
}

func (e *Engine) partitions(n, k int) []partition {
	if e.workers < 2 || n < 2 {
		return []partition{{first: -1}}
	}

	perFirst := PermutationCount(n-1, k-1)
	partitions := make([]partition, n)
	for i := range partitions {
		partitions[i] = partition{first: i, offset: i * perFirst}
	}
	return partitions
}

func (e *Engine) searchPartition(ctx context.Context, pool []*Candidate, slots SlotSpec, part partition) (partitionResult, error) {
	var result partitionResult
	pairs := make([]Pair, slots.Len())
	id := part.offset

	p := &permuter{n: len(pool), k: slots.Len(), first: part.first}
	err := p.each(ctx, func(perm []int) {
		id++
		result.total++

		for slot, idx := range perm {
			pairs[slot] = Pair{Candidate: pool[idx], Resource: slots.Resource(slot)}
		}

		score := e.scorer.Score(pairs)
		if !score.Feasible() {
			result.discarded++
			return
		}

		result.lineups = append(result.lineups, &Assignment{
			id:    id,
			pairs: slices.Clone(pairs),
			score: score,
		})
	})
	if err != nil {
		return partitionResult{}, err
	}

	return result, nil
}
