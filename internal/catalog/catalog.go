package catalog

import (
	"github.com/rotisserie/eris"

	"sportsterminal/internal/domain"
)

var (
	// ErrUnknownSport is returned when a sport id is not in the catalog.
	ErrUnknownSport = eris.New("unknown sport")
	// ErrUnknownLeague is returned when a league id is not listed under its sport.
	ErrUnknownLeague = eris.New("unknown league")
)

var sports = []domain.Sport{
	{
		ID:   "football",
		Name: "Football",
		Leagues: []domain.League{
			{ID: "nfl", Name: "NFL"},
			{ID: "college-football", Name: "College Football"},
		},
	},
	{
		ID:   "basketball",
		Name: "Basketball",
		Leagues: []domain.League{
			{ID: "nba", Name: "NBA"},
			{ID: "wnba", Name: "WNBA"},
			{ID: "mens-college-basketball", Name: "College Basketball (Men)"},
			{ID: "womens-college-basketball", Name: "College Basketball (Women)"},
		},
	},
	{
		ID:   "baseball",
		Name: "Baseball",
		Leagues: []domain.League{
			{ID: "mlb", Name: "MLB"},
			{ID: "college-baseball", Name: "College Baseball"},
		},
	},
	{
		ID:   "hockey",
		Name: "Hockey",
		Leagues: []domain.League{
			{ID: "nhl", Name: "NHL"},
		},
	},
	{
		ID:   "soccer",
		Name: "Soccer",
		Leagues: []domain.League{
			{ID: "eng.1", Name: "Premier League"},
			{ID: "esp.1", Name: "La Liga"},
			{ID: "ita.1", Name: "Serie A"},
			{ID: "ger.1", Name: "Bundesliga"},
			{ID: "usa.1", Name: "MLS"},
			{ID: "uefa.champions", Name: "Champions League"},
		},
	},
}

var icons = map[domain.SportID]string{
	"football":   "🏈",
	"basketball": "🏀",
	"baseball":   "⚾",
	"hockey":     "🏒",
	"soccer":     "⚽",
}

// Sports returns the catalog in display order. The result is a copy.
func Sports() []domain.Sport {
	out := make([]domain.Sport, len(sports))
	for i, s := range sports {
		out[i] = s
		out[i].Leagues = append([]domain.League(nil), s.Leagues...)
	}
	return out
}

// FindSport looks up a sport by id.
func FindSport(id domain.SportID) (domain.Sport, error) {
	for _, s := range sports {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Sport{}, eris.Wrapf(ErrUnknownSport, "%q", id)
}

// FindLeague looks up a league within a sport.
func FindLeague(sportID domain.SportID, leagueID domain.LeagueID) (domain.Sport, domain.League, error) {
	s, err := FindSport(sportID)
	if err != nil {
		return domain.Sport{}, domain.League{}, err
	}
	for _, l := range s.Leagues {
		if l.ID == leagueID {
			return s, l, nil
		}
	}
	return domain.Sport{}, domain.League{}, eris.Wrapf(ErrUnknownLeague, "%q in %s", leagueID, sportID)
}

// Icon returns the emoji shown next to a sport.
func Icon(id domain.SportID) string {
	if icon, ok := icons[id]; ok {
		return icon
	}
	return "🏃"
}
