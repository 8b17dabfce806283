package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sportsterminal/internal/catalog"
)

func sportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sports",
		Short: "List sports and their leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("SPORT", "ID", "LEAGUES")
			for _, s := range catalog.Sports() {
				ids := make([]string, 0, len(s.Leagues))
				for _, l := range s.Leagues {
					ids = append(ids, l.ID.String())
				}
				t.Row(catalog.Icon(s.ID)+" "+s.Name, s.ID.String(), strings.Join(ids, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
