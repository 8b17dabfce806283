package commands

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"sportsterminal/internal/catalog"
	"sportsterminal/internal/domain"
)

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage pinned leagues",
	}
	cmd.AddCommand(favListCmd(), favAddCmd(), favRemoveCmd(), favScoresCmd())
	return cmd
}

func favoriteArg(args []string) (domain.Favorite, error) {
	fav := domain.Favorite{Sport: domain.SportID(args[0]), League: domain.LeagueID(args[1])}
	if _, _, err := catalog.FindLeague(fav.Sport, fav.League); err != nil {
		return domain.Favorite{}, err
	}
	return fav, nil
}

func favListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pinned leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			favs, err := appCtx.Favorites.ListFavorites()
			if err != nil {
				return err
			}
			if len(favs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet. Add one with: sportsterminal favorites add <sport> <league>")
				return nil
			}
			for _, f := range favs {
				fmt.Fprintln(cmd.OutOrStdout(), f.Key())
			}
			return nil
		},
	}
}

func favAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <sport> <league>",
		Short: "Pin a league",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fav, err := favoriteArg(args)
			if err != nil {
				return err
			}
			if err := appCtx.Favorites.AddFavorite(fav); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pinned %s\n", fav.Key())
			return nil
		},
	}
}

func favRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <sport> <league>",
		Aliases: []string{"rm"},
		Short:   "Unpin a league",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fav := domain.Favorite{Sport: domain.SportID(args[0]), League: domain.LeagueID(args[1])}
			removed, err := appCtx.Favorites.RemoveFavorite(fav)
			if err != nil {
				return err
			}
			if !removed {
				return eris.Errorf("%s is not pinned", fav.Key())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unpinned %s\n", fav.Key())
			return nil
		},
	}
}

func favScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Print the current games of every pinned league",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := appCtx.Scores.FavoriteScoreboards(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				name := r.Favorite.Key()
				if _, l, err := catalog.FindLeague(r.Favorite.Sport, r.Favorite.League); err == nil {
					name = l.Name
				}
				fmt.Fprintf(out, "%s %s\n", catalog.Icon(r.Favorite.Sport), name)
				if r.Err != nil {
					fmt.Fprintf(out, "  error: %v\n", r.Err)
					continue
				}
				printBoard(out, r.Scoreboard)
			}
			return nil
		},
	}
}
