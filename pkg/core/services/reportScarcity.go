package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
)

// ScarcityReport lists how many of the considered players own each required ship
type ScarcityReport struct {
	Players []string
	// Ranking is rarest ship first
	Ranking []lineup.ResourceCount
	// PriorityOrder is the ranking expanded to one entry per slot
	PriorityOrder []string
	// Owners maps each required ship to the players owning it
	Owners map[string][]string
}

// Unfillable returns the ships fewer players own than the lineup requires
func (r *ScarcityReport) Unfillable() []lineup.ResourceCount {
	var short []lineup.ResourceCount
	for _, rc := range r.Ranking {
		if rc.Count < rc.Required {
			short = append(short, rc)
		}
	}
	return short
}

// ReportScarcity ranks the target lineup's ships by how few of the named players
// own them. With no names the whole roster is considered.
func ReportScarcity(
	ctx context.Context,
	source PlayerSource,
	cfg *config.Config,
	logger *zap.Logger,
	names []string,
) (*ScarcityReport, error) {
	logger.Debug("Starting reportScarcity", zap.Strings("players", names))

	slots, err := slotSpecFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	roster, err := loadRoster(ctx, source, cfg)
	if err != nil {
		return nil, err
	}

	candidates, err := selectCandidates(roster, names)
	if err != nil {
		return nil, fmt.Errorf("failed to select players: %w", err)
	}

	report := &ScarcityReport{
		Players:       make([]string, len(candidates)),
		Ranking:       lineup.ScarcityRanking(candidates, slots),
		PriorityOrder: lineup.ScarcityPriorityOrder(candidates, slots),
		Owners:        make(map[string][]string),
	}
	for i, c := range candidates {
		report.Players[i] = c.Name()
	}

	for _, ship := range slots.Distinct() {
		owners := lineup.CandidatesOwning(ship, candidates)
		ownerNames := make([]string, len(owners))
		for i, owner := range owners {
			ownerNames[i] = owner.Name()
		}
		report.Owners[ship] = ownerNames
	}

	if short := report.Unfillable(); len(short) > 0 {
		logger.Warn("Some ships can't be filled by the selected players", zap.Int("ships", len(short)))
	}

	return report, nil
}
