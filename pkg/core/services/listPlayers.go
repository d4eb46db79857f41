package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/model"
)

// ListPlayers fetches the roster sorted for display: core team first, then by name
func ListPlayers(ctx context.Context, source PlayerSource, cfg *config.Config, logger *zap.Logger) ([]model.Player, error) {
	players, err := source.ListPlayers(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}

	logger.Debug("Fetched players", zap.Int("count", len(players)))

	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b model.Player) int {
		if a.CoreTeam != b.CoreTeam {
			if a.CoreTeam {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return sorted, nil
}
