package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history [count]",
		Short: "List saved search runs, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("count must be a positive integer, got: %s", args[0])
				}
				count = n
			}

			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			summaries, err := services.ViewHistory(app.Ctx, database, app.Logger, count)
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Printf("\nNo saved runs\n\n")
				return nil
			}

			fmt.Println()
			for _, s := range summaries {
				session := s.Run.SessionDate
				if session == "" {
					session = "-"
				}
				fmt.Printf("%s  %s  session %-10s  %d checked, %d valid, %d saved, best %.6g\n",
					s.Run.ID, s.Run.CreatedAt, session,
					s.Run.TotalCount, s.Run.FeasibleCount, s.LineupCount, s.BestScore)
				fmt.Printf("    players: %s\n", strings.Join(s.Run.PlayerNames(), ", "))
			}
			fmt.Println()

			return nil
		},
	}
}
