package espn

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sportsterminal/internal/domain"
)

// ESPN mostly sends "2024-01-14T20:30Z", which time.RFC3339 rejects.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04Z07:00"}

var numbers = message.NewPrinter(language.English)

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func mapEvent(ev event) (domain.Game, bool) {
	if len(ev.Competitions) == 0 {
		return domain.Game{}, false
	}
	comp := ev.Competitions[0]

	date := ev.Date
	if date == "" {
		date = comp.Date
	}
	g := domain.Game{
		ID:        domain.EventID(ev.ID),
		Name:      ev.Name,
		ShortName: ev.ShortName,
		Date:      parseDate(date),
		Status:    comp.Status.Type.Description,
		State:     domain.GameState(comp.Status.Type.State),
		Venue:     comp.Venue.FullName,
	}
	for _, c := range comp.Competitors {
		if c.HomeAway == "home" {
			g.HomeTeam = mapTeam(c.Team, c.Score)
		} else {
			g.AwayTeam = mapTeam(c.Team, c.Score)
		}
	}
	return g, true
}

func mapTeam(t team, score string) domain.Team {
	logo := t.Logo
	if logo == "" && len(t.Logos) > 0 {
		logo = t.Logos[0].Href
	}
	return domain.Team{
		ID:           t.ID,
		Name:         t.DisplayName,
		ShortName:    t.ShortDisplayName,
		Abbreviation: t.Abbreviation,
		Score:        score,
		Logo:         logo,
	}
}

func mapSummary(
	sport domain.SportID,
	league domain.LeagueID,
	event domain.EventID,
	s summaryResponse,
) (domain.GameDetail, error) {
	if len(s.Header.Competitions) == 0 {
		return domain.GameDetail{}, eris.Wrapf(ErrNoCompetition, "event %s", event)
	}
	comp := s.Header.Competitions[0]

	d := domain.GameDetail{
		ID:     event,
		Status: statusText(comp.Status.Type),
		State:  domain.GameState(comp.Status.Type.State),
		Venue:  s.GameInfo.Venue.FullName,
	}
	if d.Venue == "" {
		d.Venue = comp.Venue.FullName
	}
	if d.IsLive() {
		d.Period = PeriodLabel(sport, league, comp.Status.Period)
		d.Clock = comp.Status.DisplayClock
	}
	if s.GameInfo.Attendance > 0 {
		d.Attendance = numbers.Sprintf("%d", s.GameInfo.Attendance)
	}

	for _, c := range comp.Competitors {
		td := domain.TeamDetail{
			Team:   mapTeam(c.Team, c.Score),
			Record: overallRecord(append(c.Record, c.Records...)),
		}
		if c.HomeAway == "home" {
			d.HomeTeam = td
		} else {
			d.AwayTeam = td
		}
	}

	for i, bt := range s.Boxscore.Teams {
		stats := make([]domain.Stat, 0, len(bt.Statistics))
		for _, st := range bt.Statistics {
			label := st.Label
			if label == "" {
				label = st.Name
			}
			stats = append(stats, domain.Stat{Label: label, Value: st.DisplayValue})
		}
		switch {
		case bt.HomeAway == "home", bt.HomeAway == "" && bt.Team.ID != "" && bt.Team.ID == d.HomeTeam.ID:
			d.HomeTeam.Statistics = stats
		case bt.HomeAway == "away", bt.HomeAway == "" && bt.Team.ID != "" && bt.Team.ID == d.AwayTeam.ID:
			d.AwayTeam.Statistics = stats
		case i == 0:
			// Box scores list the away team first.
			d.AwayTeam.Statistics = stats
		default:
			d.HomeTeam.Statistics = stats
		}
	}

	for _, tl := range s.Leaders {
		teamName := tl.Team.Abbreviation
		if teamName == "" {
			teamName = tl.Team.DisplayName
		}
		for _, cat := range tl.Leaders {
			if len(cat.Leaders) == 0 {
				continue
			}
			category := cat.DisplayName
			if category == "" {
				category = cat.Name
			}
			top := cat.Leaders[0]
			d.Leaders = append(d.Leaders, domain.Leader{
				Category: category,
				Athlete:  top.Athlete.DisplayName,
				Team:     teamName,
				Value:    top.DisplayValue,
			})
		}
	}

	plays := s.Plays
	if len(plays) == 0 {
		plays = s.ScoringPlays
	}
	if len(plays) == 0 {
		plays = s.KeyEvents
	}
	d.Plays = make([]domain.Play, 0, len(plays))
	for i := len(plays) - 1; i >= 0; i-- {
		p := plays[i]
		period := p.Period.DisplayValue
		if period == "" {
			period = PeriodLabel(sport, league, p.Period.Number)
		}
		d.Plays = append(d.Plays, domain.Play{
			Text:        p.Text,
			Period:      period,
			Clock:       p.Clock.DisplayValue,
			ScoringPlay: p.ScoringPlay,
		})
	}
	return d, nil
}

func statusText(st statusType) string {
	if st.State == string(domain.StateScheduled) && st.Detail != "" {
		return st.Detail
	}
	return st.Description
}

func overallRecord(records []record) string {
	for _, r := range records {
		if r.Type == "total" {
			return r.Summary
		}
	}
	if len(records) > 0 {
		return records[0].Summary
	}
	return ""
}

// PeriodLabel formats a period number the way the sport counts periods.
// It returns "" for n <= 0.
func PeriodLabel(sport domain.SportID, league domain.LeagueID, n int) string {
	if n <= 0 {
		return ""
	}
	switch sport {
	case "football":
		return regulation(n, 4, "Q")
	case "basketball":
		if league == "mens-college-basketball" {
			return regulation(n, 2, "H")
		}
		return regulation(n, 4, "Q")
	case "hockey":
		return regulation(n, 3, "P")
	case "baseball":
		return "Inning " + strconv.Itoa(n)
	case "soccer":
		if n <= 2 {
			return strconv.Itoa(n) + "H"
		}
		return "ET"
	}
	return strconv.Itoa(n)
}

func regulation(n, periods int, prefix string) string {
	switch {
	case n <= periods:
		return prefix + strconv.Itoa(n)
	case n == periods+1:
		return "OT"
	default:
		return strconv.Itoa(n-periods) + "OT"
	}
}
