package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/clients/sheetsclient"
	"github.com/jakechorley/cb-team-builder/pkg/db"
)

// PublishLineupsStore defines the database operations needed to publish a run
type PublishLineupsStore interface {
	GetSearchRuns(ctx context.Context) ([]db.SearchRun, error)
	GetLineups(ctx context.Context) ([]db.Lineup, error)
	GetLineupSlots(ctx context.Context) ([]db.LineupSlot, error)
}

// LineupPublisher writes a lineup table to a spreadsheet
type LineupPublisher interface {
	PublishLineups(ctx context.Context, spreadsheetID string, published *sheetsclient.PublishedLineups) error
}

// PublishLineups writes the top lineups of a stored run to the publish spreadsheet.
// An empty runID publishes the latest run; top <= 0 publishes every stored lineup.
func PublishLineups(
	ctx context.Context,
	store PublishLineupsStore,
	publisher LineupPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	runID string,
	top int,
) (*sheetsclient.PublishedLineups, error) {
	logger.Debug("Starting publishLineups", zap.String("run_id", runID), zap.Int("top", top))

	spreadsheetID := cfg.PublishSheetID()
	if spreadsheetID == "" {
		return nil, fmt.Errorf("no spreadsheet configured to publish to")
	}

	runs, err := store.GetSearchRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search runs: %w", err)
	}

	var run db.SearchRun
	var found bool
	if runID == "" {
		run, found = findLatestRun(runs)
		if !found {
			return nil, fmt.Errorf("no search runs found")
		}
	} else {
		run, found = findRunByID(runs, runID)
		if !found {
			return nil, fmt.Errorf("search run %s not found", runID)
		}
	}

	allLineups, err := store.GetLineups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lineups: %w", err)
	}

	allSlots, err := store.GetLineupSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lineup slots: %w", err)
	}

	lineups := filterLineupsByRunID(allLineups, run.ID)
	if len(lineups) == 0 {
		return nil, fmt.Errorf("search run %s has no stored lineups", run.ID)
	}
	if top > 0 && top < len(lineups) {
		lineups = lineups[:top]
	}

	slotsByLineup := groupSlotsByLineupID(allSlots)

	published := &sheetsclient.PublishedLineups{
		ClanTag:     run.ClanTag,
		SessionDate: run.SessionDate,
		RunID:       run.ID,
		Ships:       run.Ships(),
		Rows:        make([]sheetsclient.PublishedLineupRow, 0, len(lineups)),
	}

	for _, l := range lineups {
		row := sheetsclient.PublishedLineupRow{
			Rank:     l.Rank,
			LineupID: l.AssignmentID,
			Score:    l.Score,
		}
		for _, slot := range slotsByLineup[l.ID] {
			row.Slots = append(row.Slots, fmt.Sprintf("%s (%s)", slot.PlayerName, slot.Ship))
		}
		published.Rows = append(published.Rows, row)
	}

	if err := publisher.PublishLineups(ctx, spreadsheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish lineups: %w", err)
	}

	logger.Info("Lineups published",
		zap.String("run_id", run.ID),
		zap.String("spreadsheet_id", spreadsheetID),
		zap.Int("lineups", len(published.Rows)))

	return published, nil
}
