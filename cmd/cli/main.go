package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/cmd/cli/commands"
	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/clients/sheetsclient"
	"github.com/jakechorley/cb-team-builder/pkg/db"
	"github.com/jakechorley/cb-team-builder/pkg/postgres"
	"github.com/jakechorley/cb-team-builder/pkg/rosterfile"
	"github.com/jakechorley/cb-team-builder/pkg/sheetssql"
	"github.com/jakechorley/cb-team-builder/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
	cleanup []func()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Clan battle team builder",
		Long:  `A CLI tool for picking clan battle lineups: who sails which ship, ranked by preference.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			for i := len(cleanup) - 1; i >= 0; i-- {
				cleanup[i]()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.PlayersCmd(app))
	rootCmd.AddCommand(commands.ImportRosterCmd(app))
	rootCmd.AddCommand(commands.ScarcityCmd(app))
	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.HistoryCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))
	rootCmd.AddCommand(commands.SessionsCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, clients, and database
func initApp() error {
	var err error

	// Interrupts cancel long searches and stop the server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cleanup = append(cleanup, stop)
	app.Ctx = ctx

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, logging.Options{Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	// Load configuration
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully", zap.String("clan", app.Cfg.ClanTag))

	// Initialize sheets client
	if app.Cfg.Roster.CredentialsFile != "" {
		app.SheetsClient, err = sheetsclient.NewClient(ctx, app.Cfg.Roster.CredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		app.Logger.Debug("Sheets client initialized successfully")
	}

	// Pick the roster source, the local file wins over the sheet
	if app.Cfg.Roster.File != "" {
		app.RosterFile = &rosterfile.Source{Path: app.Cfg.Roster.File}
		app.Players = app.RosterFile
		app.Logger.Debug("Reading roster from file", zap.String("path", app.Cfg.Roster.File))
	} else {
		app.Players = app.SheetsClient
		app.Logger.Debug("Reading roster from sheet", zap.String("spreadsheet_id", app.Cfg.Roster.SheetID))
	}

	app.Database, err = openDatabase(ctx, app.Cfg, app.SheetsClient, app.Logger)
	if err != nil {
		return err
	}

	return nil
}

// openDatabase connects to the configured store. A nil database means none is configured.
func openDatabase(ctx context.Context, cfg *config.Config, client *sheetsclient.Client, logger *zap.Logger) (db.Database, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		logger.Debug("Connecting to postgres")
		pg, err := postgres.NewDB(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		cleanup = append(cleanup, pg.Close)

		if err := pg.RunMigrations(ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Debug("Postgres database ready")
		return pg, nil

	case config.DriverSheets:
		if client == nil {
			return nil, fmt.Errorf("database.driver sheets requires roster.credentialsFile")
		}

		schema, err := db.Schema()
		if err != nil {
			return nil, fmt.Errorf("failed to create database schema: %w", err)
		}

		logger.Debug("Connecting to sheets database", zap.String("spreadsheet_id", cfg.Database.SheetID))
		ssqlDB, err := sheetssql.NewDB(ctx, client, cfg.Database.SheetID, schema)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return db.NewDB(ssqlDB), nil

	default:
		logger.Debug("No database configured")
		return nil, nil
	}
}
