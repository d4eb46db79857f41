package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// SessionsCmd creates the sessions command
func SessionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions [count]",
		Short: "Show the next clan battle sessions from battleSchedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 5
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("count must be a positive integer, got: %s", args[0])
				}
				count = n
			}

			if app.Cfg.BattleSchedule == "" {
				return fmt.Errorf("battleSchedule is not configured")
			}

			sessions, err := services.UpcomingSessions(app.Cfg, time.Now(), count)
			if err != nil {
				return err
			}

			fmt.Printf("\nUpcoming sessions:\n")
			for i, s := range sessions {
				fmt.Printf("  %2d. %s\n", i+1, s.Format("Mon 2006-01-02 15:04 MST"))
			}
			fmt.Println()

			return nil
		},
	}
}
