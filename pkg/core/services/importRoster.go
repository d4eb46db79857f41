package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
)

// ImportRoster copies the roster from source to writer, usually the roster sheet to
// the local YAML file. The roster is validated before anything is written.
func ImportRoster(
	ctx context.Context,
	source PlayerSource,
	writer RosterWriter,
	cfg *config.Config,
	logger *zap.Logger,
) (int, error) {
	players, err := source.ListPlayers(ctx, cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch players: %w", err)
	}

	if _, err := buildRoster(players); err != nil {
		return 0, fmt.Errorf("invalid roster: %w", err)
	}

	if err := writer.SavePlayers(ctx, players); err != nil {
		return 0, fmt.Errorf("failed to save players: %w", err)
	}

	logger.Info("Roster imported", zap.Int("players", len(players)))

	return len(players), nil
}
