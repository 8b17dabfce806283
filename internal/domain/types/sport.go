package types

// Sport groups the leagues that can be browsed for it.
type Sport struct {
	ID      SportID  `json:"id"`
	Name    string   `json:"name"`
	Leagues []League `json:"leagues"`
}

// League is a single competition within a sport.
type League struct {
	ID   LeagueID `json:"id"`
	Name string   `json:"name"`
}

// Favorite pins a league for quick access.
type Favorite struct {
	Sport  SportID  `json:"sport"`
	League LeagueID `json:"league"`
}

// Key returns the "sport/league" form used for lookups and display.
func (f Favorite) Key() string { return string(f.Sport) + "/" + string(f.League) }
