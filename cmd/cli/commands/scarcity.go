package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// ScarcityCmd creates the scarcity command
func ScarcityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scarcity [players...]",
		Short: "Rank the target lineup's ships by how few players own them",
		Long: `Counts how many of the given players own each ship in the target lineup and
lists the rarest first. With no players the whole roster is counted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.ReportScarcity(app.Ctx, app.Players, app.Cfg, app.Logger, args)
			if err != nil {
				return err
			}

			fmt.Printf("\nShip ownership across %d players (rarest first)\n\n", len(report.Players))
			fmt.Printf("%-20s %6s %9s  %s\n", "Ship", "Owners", "Required", "Players")
			for _, rc := range report.Ranking {
				fmt.Printf("%-20s %6d %9d  %s\n", rc.Resource, rc.Count, rc.Required, strings.Join(report.Owners[rc.Resource], ", "))
			}

			fmt.Printf("\nPriority order: %s\n", strings.Join(report.PriorityOrder, ", "))

			if short := report.Unfillable(); len(short) > 0 {
				fmt.Printf("\n⚠ Not enough owners for:\n")
				for _, rc := range short {
					fmt.Printf("  - %s (%d owned, %d required)\n", rc.Resource, rc.Count, rc.Required)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
