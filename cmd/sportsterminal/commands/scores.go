package commands

import (
	"github.com/spf13/cobra"

	"sportsterminal/internal/domain"
)

func scoresCmd() *cobra.Command {
	var upcoming, asJSON bool
	cmd := &cobra.Command{
		Use:   "scores <sport> <league>",
		Short: "Print a league's games",
		Example: "  sportsterminal scores basketball nba\n" +
			"  sportsterminal scores soccer eng.1 --upcoming",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := appCtx.Scores.Games(cmd.Context(), domain.SportID(args[0]), domain.LeagueID(args[1]), upcoming)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), board)
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&upcoming, "upcoming", "u", false, "show scheduled games of the coming days")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func gameCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "game <sport> <league> <event-id>",
		Short: "Print the detail of one game",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Scores.Detail(cmd.Context(), domain.SportID(args[0]), domain.LeagueID(args[1]), domain.EventID(args[2]))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			printDetail(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
