package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// ImportRosterCmd creates the importRoster command
func ImportRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importRoster",
		Short: "Copy the roster sheet into the local roster file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.RequireSheets()
			if err != nil {
				return err
			}
			if app.Cfg.Roster.SheetID == "" {
				return fmt.Errorf("roster.sheetID is not configured")
			}
			if app.RosterFile == nil {
				return fmt.Errorf("roster.file is not configured")
			}

			count, err := services.ImportRoster(app.Ctx, client, app.RosterFile, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Imported %d players to %s\n\n", count, app.RosterFile.Path)
			return nil
		},
	}
}
