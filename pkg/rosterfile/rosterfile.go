// Package rosterfile stores the player roster as a local YAML file so searches can
// run without reaching the roster sheet.
package rosterfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/model"
)

type rosterDocument struct {
	Players []playerRecord `yaml:"players" validate:"dive"`
}

type playerRecord struct {
	ID       string       `yaml:"id" validate:"required"`
	Name     string       `yaml:"name" validate:"required"`
	JoinDate string       `yaml:"joinDate,omitempty"`
	CoreTeam bool         `yaml:"coreTeam,omitempty"`
	Ships    []shipRecord `yaml:"ships" validate:"dive"`
}

type shipRecord struct {
	Ship            string  `yaml:"ship" validate:"required"`
	Unavailable     bool    `yaml:"unavailable,omitempty"`
	PlayerPreferred bool    `yaml:"playerPreferred,omitempty"`
	AdmiralStrong   bool    `yaml:"admiralStrong,omitempty"`
	AdmiralWeak     bool    `yaml:"admiralWeak,omitempty"`
	Legendary       bool    `yaml:"legendary,omitempty"`
	Rating          float64 `yaml:"rating,omitempty" validate:"gte=0"`
	WinRate         float64 `yaml:"winRate,omitempty" validate:"gte=0"`
	AverageDamage   float64 `yaml:"averageDamage,omitempty" validate:"gte=0"`
	Battles         int     `yaml:"battles,omitempty" validate:"gte=0"`
}

var validate = validator.New()

// Load reads and validates a roster file
func Load(path string) ([]model.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var doc rosterDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("roster file validation failed: %w", err)
	}

	players := make([]model.Player, len(doc.Players))
	for i, record := range doc.Players {
		players[i] = record.toModel()
	}

	return players, nil
}

// Save writes the roster, replacing any existing file
func Save(path string, players []model.Player) error {
	doc := rosterDocument{Players: make([]playerRecord, len(players))}
	for i, player := range players {
		doc.Players[i] = fromModel(player)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create roster directory: %w", err)
		}
	}

	// Replace atomically
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace roster file: %w", err)
	}

	return nil
}

// Source reads and writes the roster at Path
type Source struct {
	Path string
}

// ListPlayers loads the roster file. The config is unused, the path is fixed at construction.
func (s Source) ListPlayers(ctx context.Context, cfg *config.Config) ([]model.Player, error) {
	return Load(s.Path)
}

// SavePlayers replaces the roster file
func (s Source) SavePlayers(ctx context.Context, players []model.Player) error {
	return Save(s.Path, players)
}

func (r playerRecord) toModel() model.Player {
	ships := make([]model.ShipEntry, len(r.Ships))
	for i, s := range r.Ships {
		ships[i] = model.ShipEntry{
			Ship:            s.Ship,
			Unavailable:     s.Unavailable,
			PlayerPreferred: s.PlayerPreferred,
			AdmiralStrong:   s.AdmiralStrong,
			AdmiralWeak:     s.AdmiralWeak,
			Legendary:       s.Legendary,
			Rating:          s.Rating,
			WinRate:         s.WinRate,
			AverageDamage:   s.AverageDamage,
			Battles:         s.Battles,
		}
	}

	return model.Player{
		ID:       r.ID,
		Name:     r.Name,
		JoinDate: r.JoinDate,
		CoreTeam: r.CoreTeam,
		Ships:    ships,
	}
}

func fromModel(p model.Player) playerRecord {
	ships := make([]shipRecord, len(p.Ships))
	for i, s := range p.Ships {
		ships[i] = shipRecord{
			Ship:            s.Ship,
			Unavailable:     s.Unavailable,
			PlayerPreferred: s.PlayerPreferred,
			AdmiralStrong:   s.AdmiralStrong,
			AdmiralWeak:     s.AdmiralWeak,
			Legendary:       s.Legendary,
			Rating:          s.Rating,
			WinRate:         s.WinRate,
			AverageDamage:   s.AverageDamage,
			Battles:         s.Battles,
		}
	}

	return playerRecord{
		ID:       p.ID,
		Name:     p.Name,
		JoinDate: p.JoinDate,
		CoreTeam: p.CoreTeam,
		Ships:    ships,
	}
}
