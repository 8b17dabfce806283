package interfaces

import domaintypes "sportsterminal/internal/domain/types"

// FavoriteStore persists the leagues a user pinned.
type FavoriteStore interface {
	AddFavorite(fav domaintypes.Favorite) error
	RemoveFavorite(fav domaintypes.Favorite) (bool, error)
	ListFavorites() ([]domaintypes.Favorite, error)
}

// SnapshotStore keeps the last scoreboard fetched for each league so it can
// be shown while offline.
type SnapshotStore interface {
	SaveSnapshot(board domaintypes.Scoreboard) error
	LoadSnapshot(
		sport domaintypes.SportID,
		league domaintypes.LeagueID,
		upcoming bool,
	) (domaintypes.Scoreboard, bool, error)
}
