package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/clients/sheetsclient"
	"github.com/jakechorley/cb-team-builder/pkg/core/services"
	"github.com/jakechorley/cb-team-builder/pkg/db"
	"github.com/jakechorley/cb-team-builder/pkg/rosterfile"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg *config.Config
	// SheetsClient is nil when no credentials file is configured
	SheetsClient *sheetsclient.Client
	// Players reads the roster file when one is configured, otherwise the roster sheet
	Players services.PlayerSource
	// RosterFile is nil when roster.file is unset
	RosterFile *rosterfile.Source
	// Database is nil when database.driver is none
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}

// RequireDatabase returns the configured database or an error explaining how to set one up
func (a *AppContext) RequireDatabase() (db.Database, error) {
	if a.Database == nil {
		return nil, fmt.Errorf("no database configured: set database.driver to postgres or sheets")
	}
	return a.Database, nil
}

// RequireSheets returns the sheets client or an error when it isn't configured
func (a *AppContext) RequireSheets() (*sheetsclient.Client, error) {
	if a.SheetsClient == nil {
		return nil, fmt.Errorf("no sheets access configured: set roster.credentialsFile")
	}
	return a.SheetsClient, nil
}
