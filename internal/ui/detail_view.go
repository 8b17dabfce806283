package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sportsterminal/internal/domain"
)

const (
	maxStatRows = 12
	maxPlays    = 20
)

func (m Model) detailView() string {
	title := titleStyle.Render("🏆 Game Details")
	if m.loadingDetail {
		return lipgloss.JoinVertical(lipgloss.Left, title, subtitleStyle.Render("Loading game details..."))
	}
	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)),
			"",
			helpStyle.Render("esc back • q quit"),
		)
	}
	if m.detail == nil {
		return "No game details available"
	}

	lines := m.detailLines()
	height := m.detailHeight()
	start := clamp(m.detailOffset, 0, max(len(lines)-1, 0))
	end := min(start+height, len(lines))

	if len(lines) > height {
		title += dimStyle.Render(fmt.Sprintf(" (Scroll: %d/%d lines)", start+1, len(lines)))
	}

	body := ""
	if len(lines) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, lines[start:end]...)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.scoreHeader(m.detail),
		"",
		body,
		"",
		helpStyle.Render("↑/k up • ↓/j down • esc back • q quit"),
	)
}

func (m Model) scoreHeader(d *domain.GameDetail) string {
	status := dimStyle.Render(d.Status)
	if d.IsLive() {
		status = liveStyle.Render("🔴 LIVE - " + d.Status)
		if d.Period != "" && d.Clock != "" {
			status += dimStyle.Render(fmt.Sprintf(" • %s %s", d.Period, d.Clock))
		}
	}

	row := func(t domain.TeamDetail) string {
		name := t.Name
		if t.Record != "" {
			name += dimStyle.Render(" (" + t.Record + ")")
		}
		return teamStyle.Render(fmt.Sprintf("%s %-32s %5s", teamGlyph(t.Name), name, t.Score))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(violet).
		Padding(1, 2).
		Width(max(m.width-8, 20))
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, status, "", row(d.AwayTeam), row(d.HomeTeam)))
}

// detailLines renders the scrollable sections of the detail screen.
func (m Model) detailLines() []string {
	d := m.detail
	if d == nil {
		return nil
	}
	var lines []string

	if d.Venue != "" || d.Attendance != "" {
		lines = append(lines, sectionStyle.Render("📍 Game Info"), "")
		if d.Venue != "" {
			lines = append(lines, dimStyle.Render("  Venue: "+d.Venue))
		}
		if d.Attendance != "" {
			lines = append(lines, dimStyle.Render("  Attendance: "+d.Attendance))
		}
		lines = append(lines, "")
	}

	if len(d.Leaders) > 0 {
		lines = append(lines, sectionStyle.Render("⭐ Game Leaders"), "")
		for _, l := range d.Leaders {
			lines = append(lines, itemStyle.Render(fmt.Sprintf("  %s: %s (%s) - %s", l.Category, l.Athlete, l.Team, l.Value)))
		}
		lines = append(lines, "")
	}

	if len(d.AwayTeam.Statistics) > 0 || len(d.HomeTeam.Statistics) > 0 {
		lines = append(lines, sectionStyle.Render("📊 Team Statistics"), "")
		lines = append(lines, columnStyle.Render(statRow("Stat", shortName(d.AwayTeam), "Stat", shortName(d.HomeTeam))))
		lines = append(lines, dimStyle.Render(statRow(strings.Repeat("-", 18), strings.Repeat("-", 8), strings.Repeat("-", 18), strings.Repeat("-", 8))))
		n := min(max(len(d.AwayTeam.Statistics), len(d.HomeTeam.Statistics)), maxStatRows)
		for i := 0; i < n; i++ {
			away, home := statAt(d.AwayTeam.Statistics, i), statAt(d.HomeTeam.Statistics, i)
			lines = append(lines, dimStyle.Render(statRow(away.Label, away.Value, home.Label, home.Value)))
		}
		lines = append(lines, "")
	}

	if len(d.Plays) > 0 {
		lines = append(lines, sectionStyle.Render("📝 Recent Plays"), "")
		for _, p := range d.Plays[:min(len(d.Plays), maxPlays)] {
			prefix, style := "  ", dimStyle
			if p.ScoringPlay {
				prefix, style = "🎯 ", liveStyle
			}
			clock := ""
			if p.Period != "" && p.Clock != "" {
				clock = fmt.Sprintf("[%s %s] ", p.Period, p.Clock)
			}
			lines = append(lines, style.Render(prefix+clock+p.Text))
		}
	}
	return lines
}

func statRow(awayLabel, awayValue, homeLabel, homeValue string) string {
	return fmt.Sprintf("  %-18s %8s    |    %-18s %8s", awayLabel, awayValue, homeLabel, homeValue)
}

func statAt(stats []domain.Stat, i int) domain.Stat {
	if i < len(stats) {
		return stats[i]
	}
	return domain.Stat{}
}

func shortName(t domain.TeamDetail) string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}
