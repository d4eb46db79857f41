package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/pkg/db"
)

// ViewHistoryStore defines the database operations needed to summarise past runs
type ViewHistoryStore interface {
	GetSearchRuns(ctx context.Context) ([]db.SearchRun, error)
	GetLineups(ctx context.Context) ([]db.Lineup, error)
}

// RunSummary is a stored search run with its saved lineups counted
type RunSummary struct {
	Run         db.SearchRun
	LineupCount int
	// BestScore is the score of the rank 1 lineup, zero when none were saved
	BestScore float64
}

// ViewHistory lists stored search runs newest first. count <= 0 lists every run.
func ViewHistory(ctx context.Context, store ViewHistoryStore, logger *zap.Logger, count int) ([]RunSummary, error) {
	logger.Debug("Starting viewHistory", zap.Int("count", count))

	runs, err := store.GetSearchRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search runs: %w", err)
	}

	lineups, err := store.GetLineups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lineups: %w", err)
	}

	sorted := slices.Clone(runs)
	slices.SortStableFunc(sorted, func(a, b db.SearchRun) int {
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})

	if count > 0 && count < len(sorted) {
		sorted = sorted[:count]
	}

	summaries := make([]RunSummary, len(sorted))
	for i, run := range sorted {
		summaries[i] = RunSummary{Run: run}
		for _, l := range filterLineupsByRunID(lineups, run.ID) {
			summaries[i].LineupCount++
			if l.Rank == 1 {
				summaries[i].BestScore = l.Score
			}
		}
	}

	logger.Debug("Summarised runs", zap.Int("runs", len(summaries)))

	return summaries, nil
}
