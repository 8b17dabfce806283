package interfaces

import (
	"context"

	domaintypes "sportsterminal/internal/domain/types"
)

// ScoreboardClient is how we talk to the sports data API, all with context.
type ScoreboardClient interface {
	Scoreboard(
		ctx context.Context,
		sport domaintypes.SportID,
		league domaintypes.LeagueID,
		opts domaintypes.ScoreboardOptions,
	) ([]domaintypes.Game, error)
	Summary(
		ctx context.Context,
		sport domaintypes.SportID,
		league domaintypes.LeagueID,
		event domaintypes.EventID,
	) (domaintypes.GameDetail, error)
}
