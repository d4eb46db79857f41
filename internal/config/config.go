package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup/criteria"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSheets   = "sheets"
	DriverNone     = "none"
)

// RosterConfig defines where the player roster is read from.
// The local file takes precedence over the sheet when both are set.
type RosterConfig struct {
	File            string `yaml:"file,omitempty" validate:"required_without=SheetID"`
	SheetID         string `yaml:"sheetID,omitempty"`
	Tab             string `yaml:"tab,omitempty" validate:"required_with=SheetID"`
	CredentialsFile string `yaml:"credentialsFile,omitempty" validate:"required_with=SheetID"`
	// PublishSheetID is where lineups are published, defaults to SheetID
	PublishSheetID string `yaml:"publishSheetID,omitempty"`
}

// DatabaseConfig selects where search runs are stored. An empty driver is treated as none.
type DatabaseConfig struct {
	Driver  string `yaml:"driver" validate:"omitempty,oneof=postgres sheets none"`
	URL     string `yaml:"url,omitempty" validate:"required_if=Driver postgres"`
	SheetID string `yaml:"sheetID,omitempty" validate:"required_if=Driver sheets"`
}

// ScoringConfig holds the lineup scoring weights
type ScoringConfig struct {
	PointBudget        float64 `yaml:"pointBudget" validate:"gte=0"`
	AuthorityStrong    float64 `yaml:"authorityStrong" validate:"gte=0"`
	AuthorityWeak      float64 `yaml:"authorityWeak" validate:"gte=0"`
	PriorityGroup      float64 `yaml:"priorityGroup" validate:"gte=0"`
	CandidatePreferred float64 `yaml:"candidatePreferred" validate:"gte=0"`
	IncludeStats       bool    `yaml:"includeStats"`
	Rating             float64 `yaml:"rating" validate:"gte=0"`
	WinRate            float64 `yaml:"winRate" validate:"gte=0"`
	AverageOutput      float64 `yaml:"averageOutput" validate:"gte=0"`
	RatingScale        float64 `yaml:"ratingScale" validate:"gte=0"`
	AverageOutputScale float64 `yaml:"averageOutputScale" validate:"gte=0"`
}

// Weights converts the scoring section into engine weights
func (s ScoringConfig) Weights() criteria.Weights {
	return criteria.Weights{
		PointBudget:        s.PointBudget,
		AuthorityStrong:    s.AuthorityStrong,
		AuthorityWeak:      s.AuthorityWeak,
		PriorityGroup:      s.PriorityGroup,
		CandidatePreferred: s.CandidatePreferred,
		IncludeStats:       s.IncludeStats,
		Rating:             s.Rating,
		WinRate:            s.WinRate,
		AverageOutput:      s.AverageOutput,
		RatingScale:        s.RatingScale,
		AverageOutputScale: s.AverageOutputScale,
	}
}

// SearchConfig tunes the lineup search
type SearchConfig struct {
	Workers     int `yaml:"workers" validate:"gte=0"`
	ResultLimit int `yaml:"resultLimit" validate:"gte=0"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Config represents the application configuration
type Config struct {
	ClanTag        string         `yaml:"clanTag" validate:"required"`
	TargetLineup   []string       `yaml:"targetLineup" validate:"min=1,dive,required"`
	Roster         RosterConfig   `yaml:"roster"`
	Database       DatabaseConfig `yaml:"database"`
	Scoring        ScoringConfig  `yaml:"scoring"`
	Search         SearchConfig   `yaml:"search"`
	BattleSchedule string         `yaml:"battleSchedule,omitempty"`
	Server         ServerConfig   `yaml:"server"`
}

// PublishSheetID returns the spreadsheet lineups are published to
func (c *Config) PublishSheetID() string {
	if c.Roster.PublishSheetID != "" {
		return c.Roster.PublishSheetID
	}
	return c.Roster.SheetID
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns a configuration with every optional value set. Values read from
// a config file are applied on top of it.
func Default() *Config {
	w := criteria.DefaultWeights()
	return &Config{
		TargetLineup: lineup.DefaultTargetLineup(),
		Database:     DatabaseConfig{Driver: DriverNone},
		Scoring: ScoringConfig{
			PointBudget:        w.PointBudget,
			AuthorityStrong:    w.AuthorityStrong,
			AuthorityWeak:      w.AuthorityWeak,
			PriorityGroup:      w.PriorityGroup,
			CandidatePreferred: w.CandidatePreferred,
			IncludeStats:       w.IncludeStats,
			Rating:             w.Rating,
			WinRate:            w.WinRate,
			AverageOutput:      w.AverageOutput,
			RatingScale:        w.RatingScale,
			AverageOutputScale: w.AverageOutputScale,
		},
		Search: SearchConfig{Workers: 1, ResultLimit: 10},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load loads and validates the default configuration file
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads and validates team_builder_config.<env>.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(configFileName(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.BattleSchedule != "" {
		if _, err := rrule.StrToRRule(cfg.BattleSchedule); err != nil {
			return fmt.Errorf("invalid rrule in battleSchedule: %w", err)
		}
	}

	return nil
}

func configFileName(env string) string {
	if env == "" {
		return "team_builder_config.yaml"
	}
	return fmt.Sprintf("team_builder_config.%s.yaml", env)
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(configFileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
