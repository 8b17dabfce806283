package types

// SportID is the ESPN path segment of a sport, e.g. "basketball".
type SportID string

// String returns the string form of the sport identifier.
func (id SportID) String() string { return string(id) }

// LeagueID is the ESPN path segment of a league, e.g. "nba" or "eng.1".
type LeagueID string

// String returns the string form of the league identifier.
func (id LeagueID) String() string { return string(id) }

// EventID identifies a single game on the ESPN API.
type EventID string

// String returns the string form of the event identifier.
func (id EventID) String() string { return string(id) }
