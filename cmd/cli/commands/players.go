package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// PlayersCmd creates the players command
func PlayersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List the roster and the ships each player owns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := services.ListPlayers(app.Ctx, app.Players, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d players\n\n", len(players))
			for _, p := range players {
				marker := " "
				if p.CoreTeam {
					marker = "*"
				}

				ships := make([]string, 0, len(p.Ships))
				for _, s := range p.Ships {
					label := s.Ship
					var flags []string
					if s.Unavailable {
						flags = append(flags, "unavailable")
					}
					if s.PlayerPreferred {
						flags = append(flags, "preferred")
					}
					if s.AdmiralStrong {
						flags = append(flags, "admiral!!")
					}
					if s.AdmiralWeak {
						flags = append(flags, "admiral!")
					}
					if s.Legendary {
						flags = append(flags, "legendary")
					}
					if len(flags) > 0 {
						label += " [" + strings.Join(flags, ", ") + "]"
					}
					ships = append(ships, label)
				}

				fmt.Printf("%s %-20s %-12s %s\n", marker, p.Name, p.ID, strings.Join(ships, "; "))
			}
			fmt.Printf("\n* core team\n\n")

			return nil
		},
	}
}
