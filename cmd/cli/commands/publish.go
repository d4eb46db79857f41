package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "publish [run_id]",
		Short: "Write a saved run's lineups to the publish spreadsheet",
		Long:  `Publishes the lineups of the given run, or of the latest run when no id is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var runID string
			if len(args) == 1 {
				runID = args[0]
			}

			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}
			client, err := app.RequireSheets()
			if err != nil {
				return err
			}

			published, err := services.PublishLineups(app.Ctx, database, client, app.Cfg, app.Logger, runID, top)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Published %d lineups from run %s\n\n", len(published.Rows), published.RunID)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 3, "Number of lineups to publish (0 for all saved)")

	return cmd
}
