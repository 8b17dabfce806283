package interfaces

import (
	"context"

	domaintypes "sportsterminal/internal/domain/types"
)

// ScoresService loads scoreboards and game details and manages favorites.
type ScoresService interface {
	Games(
		ctx context.Context,
		sport domaintypes.SportID,
		league domaintypes.LeagueID,
		upcoming bool,
	) (domaintypes.Scoreboard, error)
	Detail(
		ctx context.Context,
		sport domaintypes.SportID,
		league domaintypes.LeagueID,
		event domaintypes.EventID,
	) (domaintypes.GameDetail, error)
	FavoriteScoreboards(ctx context.Context) ([]domaintypes.FavoriteScoreboard, error)
	IsFavorite(fav domaintypes.Favorite) (bool, error)
	ToggleFavorite(fav domaintypes.Favorite) (bool, error)
}
