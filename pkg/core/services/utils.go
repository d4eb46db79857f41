package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
	"github.com/jakechorley/cb-team-builder/pkg/core/model"
	"github.com/jakechorley/cb-team-builder/pkg/db"
)

// PlayerSource defines where the player roster is read from
type PlayerSource interface {
	ListPlayers(ctx context.Context, cfg *config.Config) ([]model.Player, error)
}

// RosterWriter defines where an imported roster is written to
type RosterWriter interface {
	SavePlayers(ctx context.Context, players []model.Player) error
}

// toCandidateInput converts a roster player into the engine's candidate record
func toCandidateInput(player model.Player) lineup.CandidateInput {
	resources := make(map[string]lineup.Ownership, len(player.Ships))
	for _, ship := range player.Ships {
		resources[ship.Ship] = lineup.Ownership{
			Available:                 !ship.Unavailable,
			CandidatePrefers:          ship.PlayerPreferred,
			AuthorityStrongPreference: ship.AdmiralStrong,
			AuthorityWeakPreference:   ship.AdmiralWeak,
			Legendary:                 ship.Legendary,
			Rating:                    ship.Rating,
			WinRate:                   ship.WinRate,
			AverageOutput:             ship.AverageDamage,
			Battles:                   ship.Battles,
		}
	}

	return lineup.CandidateInput{
		ID:            player.ID,
		Name:          player.Name,
		PriorityGroup: player.CoreTeam,
		Resources:     resources,
	}
}

// buildRoster validates every player and indexes them by id and name
func buildRoster(players []model.Player) (*lineup.Roster, error) {
	inputs := make([]lineup.CandidateInput, len(players))
	for i, player := range players {
		inputs[i] = toCandidateInput(player)
	}
	return lineup.NewRoster(inputs)
}

// loadRoster fetches the players from the source and builds the roster
func loadRoster(ctx context.Context, source PlayerSource, cfg *config.Config) (*lineup.Roster, error) {
	players, err := source.ListPlayers(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}

	roster, err := buildRoster(players)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}

	return roster, nil
}

// selectCandidates resolves the named players, or returns the whole roster when none are named
func selectCandidates(roster *lineup.Roster, names []string) ([]*lineup.Candidate, error) {
	if len(names) == 0 {
		return roster.Candidates(), nil
	}
	return roster.Select(names...)
}

// slotSpecFromConfig builds the slots to fill from the configured target lineup
func slotSpecFromConfig(cfg *config.Config) (lineup.SlotSpec, error) {
	slots, err := lineup.NewSlotSpec(cfg.TargetLineup...)
	if err != nil {
		return lineup.SlotSpec{}, fmt.Errorf("invalid target lineup: %w", err)
	}
	return slots, nil
}

// findLatestRun returns the most recently created run
func findLatestRun(runs []db.SearchRun) (db.SearchRun, bool) {
	if len(runs) == 0 {
		return db.SearchRun{}, false
	}

	// CreatedAt is RFC3339 UTC, so string order is time order
	return slices.MaxFunc(runs, func(a, b db.SearchRun) int {
		return strings.Compare(a.CreatedAt, b.CreatedAt)
	}), true
}

// findRunByID returns the run with the given id
func findRunByID(runs []db.SearchRun, id string) (db.SearchRun, bool) {
	for _, run := range runs {
		if run.ID == id {
			return run, true
		}
	}
	return db.SearchRun{}, false
}

// filterLineupsByRunID returns the run's lineups ordered by rank
func filterLineupsByRunID(lineups []db.Lineup, runID string) []db.Lineup {
	var filtered []db.Lineup
	for _, l := range lineups {
		if l.RunID == runID {
			filtered = append(filtered, l)
		}
	}
	slices.SortStableFunc(filtered, func(a, b db.Lineup) int {
		return a.Rank - b.Rank
	})
	return filtered
}

// groupSlotsByLineupID indexes slots by lineup, each ordered by position
func groupSlotsByLineupID(slots []db.LineupSlot) map[string][]db.LineupSlot {
	grouped := make(map[string][]db.LineupSlot)
	for _, s := range slots {
		grouped[s.LineupID] = append(grouped[s.LineupID], s)
	}
	for _, group := range grouped {
		slices.SortStableFunc(group, func(a, b db.LineupSlot) int {
			return a.Position - b.Position
		})
	}
	return grouped
}
