package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup/criteria"
	"github.com/jakechorley/cb-team-builder/pkg/db"
)

// GenerateLineupsStore defines the database operations needed to persist a search
type GenerateLineupsStore interface {
	InsertSearchRun(ctx context.Context, run *db.SearchRun) error
	InsertLineups(ctx context.Context, lineups []db.Lineup, slots []db.LineupSlot) error
}

// GenerateLineupsInput selects the players and tunes a single search
type GenerateLineupsInput struct {
	// Players are display names or ids, one per slot
	Players []string
	// Limit overrides search.resultLimit when positive
	Limit int
	// Workers overrides search.workers when positive
	Workers int
	// DryRun skips persistence
	DryRun bool
	// Now stamps the run; zero means time.Now()
	Now time.Time
}

// GenerateLineupsResult contains the search outcome
type GenerateLineupsResult struct {
	Run    *db.SearchRun
	Slots  lineup.SlotSpec
	Search *lineup.SearchResult
	// Top is the best Limit lineups, the ones persisted
	Top []*lineup.Assignment
}

// GenerateLineups scores every way of seating the chosen players on the configured
// target lineup and, unless it's a dry run, stores the run with its best lineups
func GenerateLineups(
	ctx context.Context,
	store GenerateLineupsStore,
	source PlayerSource,
	cfg *config.Config,
	logger *zap.Logger,
	input GenerateLineupsInput,
) (*GenerateLineupsResult, error) {
	logger.Debug("Starting generateLineups",
		zap.Strings("players", input.Players),
		zap.Bool("dry_run", input.DryRun))

	if store == nil && !input.DryRun {
		return nil, fmt.Errorf("a database is required unless running a dry run")
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	slots, err := slotSpecFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	roster, err := loadRoster(ctx, source, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded roster", zap.Int("players", roster.Len()))

	candidates, err := roster.Select(input.Players...)
	if err != nil {
		return nil, fmt.Errorf("failed to select players: %w", err)
	}

	workers := cfg.Search.Workers
	if input.Workers > 0 {
		workers = input.Workers
	}

	engine, err := criteria.NewEngine(cfg.Scoring.Weights(), workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	logger.Debug("Enumerating lineups",
		zap.Int("slots", slots.Len()),
		zap.Int("permutations", lineup.PermutationCount(len(candidates), slots.Len())),
		zap.Int("workers", workers),
		zap.Strings("criteria", engine.Scorer().Criteria()))

	started := time.Now()
	search, err := engine.GenerateLineups(ctx, candidates, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to generate lineups: %w", err)
	}

	logger.Info(fmt.Sprintf("%d permutations were checked: %d were invalid and %d were evaluated",
		search.TotalCount, search.DiscardedCount, len(search.Lineups)),
		zap.Duration("elapsed", time.Since(started)))

	limit := cfg.Search.ResultLimit
	if input.Limit > 0 {
		limit = input.Limit
	}
	top := search.Top(limit)

	sessionDate, err := nextSessionDate(cfg, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find next session: %w", err)
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name()
	}

	run := &db.SearchRun{
		ID:             uuid.New().String(),
		CreatedAt:      now.UTC().Format(time.RFC3339),
		SessionDate:    sessionDate,
		ClanTag:        cfg.ClanTag,
		Players:        db.JoinList(names),
		TargetLineup:   db.JoinList(slots.Resources()),
		TotalCount:     search.TotalCount,
		DiscardedCount: search.DiscardedCount,
		FeasibleCount:  len(search.Lineups),
	}

	result := &GenerateLineupsResult{
		Run:    run,
		Slots:  slots,
		Search: search,
		Top:    top,
	}

	if input.DryRun {
		logger.Debug("Dry run, skipping persistence")
		return result, nil
	}

	if err := store.InsertSearchRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to insert search run: %w", err)
	}

	lineups, lineupSlots := lineupRecords(run.ID, top)
	if err := store.InsertLineups(ctx, lineups, lineupSlots); err != nil {
		return nil, fmt.Errorf("failed to insert lineups: %w", err)
	}

	logger.Info("Search run saved",
		zap.String("run_id", run.ID),
		zap.String("session_date", run.SessionDate),
		zap.Int("lineups", len(lineups)))

	return result, nil
}

// lineupRecords flattens ranked assignments into lineup and slot records
func lineupRecords(runID string, assignments []*lineup.Assignment) ([]db.Lineup, []db.LineupSlot) {
	lineups := make([]db.Lineup, 0, len(assignments))
	var slots []db.LineupSlot

	for rank, a := range assignments {
		score, _ := a.Score().Value()
		record := db.Lineup{
			ID:           uuid.New().String(),
			RunID:        runID,
			Rank:         rank + 1,
			AssignmentID: a.ID(),
			Score:        score,
		}
		lineups = append(lineups, record)

		for pos, pair := range a.Pairs() {
			slots = append(slots, db.LineupSlot{
				ID:         uuid.New().String(),
				LineupID:   record.ID,
				Position:   pos,
				Ship:       pair.Resource,
				PlayerID:   pair.Candidate.ID(),
				PlayerName: pair.Candidate.Name(),
			})
		}
	}

	return lineups, slots
}
