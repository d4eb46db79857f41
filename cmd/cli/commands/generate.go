package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	var (
		dryRun  bool
		limit   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "generate <players...>",
		Short: "Score every way of seating the players on the target lineup",
		Long: `Tries every assignment of the given players to the ships of the configured
target lineup, drops the ones where a player doesn't own their ship and ranks the rest.
Exactly one player is needed per ship. The best lineups are saved unless --dry-run is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var store services.GenerateLineupsStore
			if !dryRun {
				database, err := app.RequireDatabase()
				if err != nil {
					return fmt.Errorf("%w (or use --dry-run)", err)
				}
				store = database
			}

			result, err := services.GenerateLineups(app.Ctx, store, app.Players, app.Cfg, app.Logger, services.GenerateLineupsInput{
				Players: args,
				Limit:   limit,
				Workers: workers,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nTarget lineup: %s\n", result.Slots)
			if result.Run.SessionDate != "" {
				fmt.Printf("Next session:  %s\n", result.Run.SessionDate)
			}
			fmt.Printf("Checked %d lineups: %d invalid, %d valid\n\n",
				result.Search.TotalCount, result.Search.DiscardedCount, len(result.Search.Lineups))

			if len(result.Top) == 0 {
				fmt.Printf("No valid lineup: some ship has no owner among the selected players\n\n")
			}

			for rank, assignment := range result.Top {
				fmt.Printf("%2d. Lineup %d  score %s\n", rank+1, assignment.ID(), assignment.Score())
				for _, pair := range assignment.Pairs() {
					fmt.Printf("      %-20s %s\n", pair.Resource, pair.Candidate.Name())
				}
			}

			if !dryRun {
				fmt.Printf("\n✓ Saved run %s with %d lineups\n", result.Run.ID, len(result.Top))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the lineups without saving them")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of lineups to keep (defaults to search.resultLimit)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel scoring workers (defaults to search.workers)")

	return cmd
}
