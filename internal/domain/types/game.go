package types

import "time"

// GameState mirrors ESPN's status.type.state.
type GameState string

const (
	StateScheduled GameState = "pre"
	StateLive      GameState = "in"
	StateFinal     GameState = "post"
)

// Team is one side of a game as listed on a scoreboard.
type Team struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Score        string `json:"score,omitempty"`
	Logo         string `json:"logo,omitempty"`
}

// Game is a scoreboard entry.
type Game struct {
	ID        EventID   `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	State     GameState `json:"state"`
	HomeTeam  Team      `json:"home_team"`
	AwayTeam  Team      `json:"away_team"`
	Venue     string    `json:"venue,omitempty"`
}

// IsLive reports whether the game is in progress.
func (g Game) IsLive() bool { return g.State == StateLive }

// ScoreboardOptions selects which games a scoreboard request returns.
type ScoreboardOptions struct {
	// Upcoming restricts the result to scheduled games in the next Days days.
	Upcoming bool
	Days     int
}

// Scoreboard is the list of games of one league at a point in time.
type Scoreboard struct {
	Sport     SportID   `json:"sport"`
	League    LeagueID  `json:"league"`
	Upcoming  bool      `json:"upcoming"`
	Games     []Game    `json:"games"`
	FetchedAt time.Time `json:"fetched_at"`

	// Stale is set when the games come from a saved snapshot because the
	// API could not be reached.
	Stale bool `json:"-"`
}

// FavoriteScoreboard is the outcome of loading one favorite league.
type FavoriteScoreboard struct {
	Favorite   Favorite
	Scoreboard Scoreboard
	Err        error
}
