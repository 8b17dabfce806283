package domain

import (
	interfaces "sportsterminal/internal/domain/interfaces"
	types "sportsterminal/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SportID            = types.SportID
	LeagueID           = types.LeagueID
	EventID            = types.EventID
	Sport              = types.Sport
	League             = types.League
	Favorite           = types.Favorite
	GameState          = types.GameState
	Team               = types.Team
	Game               = types.Game
	ScoreboardOptions  = types.ScoreboardOptions
	Scoreboard         = types.Scoreboard
	FavoriteScoreboard = types.FavoriteScoreboard
	Stat               = types.Stat
	TeamDetail         = types.TeamDetail
	Leader             = types.Leader
	Play               = types.Play
	GameDetail         = types.GameDetail
)

// Game states re-exported for callers that only import domain.
const (
	StateScheduled = types.StateScheduled
	StateLive      = types.StateLive
	StateFinal     = types.StateFinal
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ScoreboardClient = interfaces.ScoreboardClient
	FavoriteStore    = interfaces.FavoriteStore
	SnapshotStore    = interfaces.SnapshotStore
	ScoresService    = interfaces.ScoresService
)
