package types

// Stat is one labelled team statistic.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TeamDetail extends Team with what the game summary knows about it.
type TeamDetail struct {
	Team
	Record     string `json:"record,omitempty"`
	Statistics []Stat `json:"statistics,omitempty"`
}

// Leader is the top performer of a team in one category.
type Leader struct {
	Category string `json:"category"`
	Athlete  string `json:"athlete"`
	Team     string `json:"team"`
	Value    string `json:"value"`
}

// Play is a single play-by-play entry.
type Play struct {
	Text        string `json:"text"`
	Period      string `json:"period,omitempty"`
	Clock       string `json:"clock,omitempty"`
	ScoringPlay bool   `json:"scoring_play,omitempty"`
}

// GameDetail is the expanded view of one game.
type GameDetail struct {
	ID         EventID    `json:"id"`
	Status     string     `json:"status"`
	State      GameState  `json:"state"`
	Period     string     `json:"period,omitempty"`
	Clock      string     `json:"clock,omitempty"`
	Venue      string     `json:"venue,omitempty"`
	Attendance string     `json:"attendance,omitempty"`
	HomeTeam   TeamDetail `json:"home_team"`
	AwayTeam   TeamDetail `json:"away_team"`
	Leaders    []Leader   `json:"leaders,omitempty"`

	// Plays are ordered most recent first.
	Plays []Play `json:"plays,omitempty"`
}

// IsLive reports whether the game is in progress.
func (d GameDetail) IsLive() bool { return d.State == StateLive }
