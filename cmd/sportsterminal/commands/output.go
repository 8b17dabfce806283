package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"sportsterminal/internal/domain"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func gamesTable(games []domain.Game) string {
	t := newTable("ID", "STATUS", "AWAY", "", "HOME", "", "START", "VENUE")
	for _, g := range games {
		status := g.Status
		if g.IsLive() {
			status = "LIVE " + status
		}
		t.Row(
			g.ID.String(),
			status,
			g.AwayTeam.Name, dash(g.AwayTeam.Score),
			g.HomeTeam.Name, dash(g.HomeTeam.Score),
			g.Date.Local().Format("Mon Jan 2 3:04 PM"),
			g.Venue,
		)
	}
	return t.Render()
}

func printBoard(w io.Writer, board domain.Scoreboard) {
	if board.Stale {
		fmt.Fprintf(w, "offline: showing saved scores from %s\n", board.FetchedAt.Local().Format("Jan 2 3:04 PM"))
	}
	if len(board.Games) == 0 {
		if board.Upcoming {
			fmt.Fprintln(w, "No upcoming games scheduled.")
		} else {
			fmt.Fprintln(w, "No current games. Use --upcoming to view upcoming games.")
		}
		return
	}
	fmt.Fprintln(w, gamesTable(board.Games))
}

func printDetail(w io.Writer, d domain.GameDetail) {
	status := d.Status
	if d.IsLive() {
		status = "LIVE " + status
		if d.Period != "" && d.Clock != "" {
			status += fmt.Sprintf(" (%s %s)", d.Period, d.Clock)
		}
	}
	fmt.Fprintln(w, status)

	score := newTable("TEAM", "RECORD", "SCORE")
	for _, t := range []domain.TeamDetail{d.AwayTeam, d.HomeTeam} {
		score.Row(t.Name, t.Record, dash(t.Score))
	}
	fmt.Fprintln(w, score.Render())

	if d.Venue != "" {
		fmt.Fprintf(w, "Venue: %s\n", d.Venue)
	}
	if d.Attendance != "" {
		fmt.Fprintf(w, "Attendance: %s\n", d.Attendance)
	}

	if len(d.Leaders) > 0 {
		fmt.Fprintln(w, "\nLeaders")
		for _, l := range d.Leaders {
			fmt.Fprintf(w, "  %s: %s (%s) - %s\n", l.Category, l.Athlete, l.Team, l.Value)
		}
	}

	if n := max(len(d.AwayTeam.Statistics), len(d.HomeTeam.Statistics)); n > 0 {
		stats := newTable("STAT", d.AwayTeam.Abbreviation, d.HomeTeam.Abbreviation)
		for i := 0; i < n; i++ {
			away, home := statAt(d.AwayTeam.Statistics, i), statAt(d.HomeTeam.Statistics, i)
			label := away.Label
			if label == "" {
				label = home.Label
			}
			stats.Row(label, dash(away.Value), dash(home.Value))
		}
		fmt.Fprintln(w, "\n"+stats.Render())
	}

	if len(d.Plays) > 0 {
		fmt.Fprintln(w, "\nRecent plays")
		for _, p := range d.Plays[:min(len(d.Plays), 20)] {
			mark := " "
			if p.ScoringPlay {
				mark = "*"
			}
			clock := strings.TrimSpace(p.Period + " " + p.Clock)
			fmt.Fprintf(w, "%s [%s] %s\n", mark, clock, p.Text)
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func statAt(stats []domain.Stat, i int) domain.Stat {
	if i < len(stats) {
		return stats[i]
	}
	return domain.Stat{}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
