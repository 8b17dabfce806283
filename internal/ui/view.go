package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sportsterminal/internal/catalog"
	"sportsterminal/internal/domain"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var content string
	switch m.screen {
	case sportsScreen:
		content = m.sportsView()
	case leaguesScreen:
		content = m.leaguesView()
	case gamesScreen:
		content = m.gamesView()
	case detailScreen:
		content = m.detailView()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, content)
}

func (m Model) sportsView() string {
	var b strings.Builder
	for i, s := range m.sports {
		b.WriteString(menuItem(i == m.sportCursor, catalog.Icon(s.ID)+" "+s.Name))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🏆 Sports Scores"),
		subtitleStyle.Render("Select a sport"),
		"",
		b.String(),
		helpStyle.Render("↑/k up • ↓/j down • enter select • q quit"),
	)
}

func (m Model) leaguesView() string {
	var b strings.Builder
	for i, l := range m.sport.Leagues {
		name := l.Name
		if m.pins[l.ID] {
			name += " ★"
		}
		b.WriteString(menuItem(i == m.leagueCursor, name))
	}
	parts := []string{
		titleStyle.Render(catalog.Icon(m.sport.ID) + " " + m.sport.Name),
		subtitleStyle.Render("Select a league"),
		"",
		b.String(),
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, helpStyle.Render("↑/k up • ↓/j down • enter select • f pin • esc back • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func menuItem(selected bool, label string) string {
	if selected {
		return cursorStyle.Render("❯ "+label) + "\n"
	}
	return itemStyle.Render("  "+label) + "\n"
}

func (m Model) gamesView() string {
	name := fmt.Sprintf("%s %s - %s", catalog.Icon(m.sport.ID), m.sport.Name, m.league.Name)
	if m.pins[m.league.ID] {
		name += " ★"
	}
	title := titleStyle.Render(name)

	toggle := "u upcoming"
	if m.upcoming {
		toggle = "u current"
	}

	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)),
			"",
			helpStyle.Render("r refresh • esc back • q quit"),
		)
	}

	status := "Loading games..."
	if !m.loading {
		status = "Last updated: " + m.lastUpdate.Local().Format("3:04 PM")
	}
	if m.board.Stale {
		status += " • offline, showing saved scores from " + m.board.FetchedAt.Local().Format("Jan 2 3:04 PM")
	}
	statusLine := subtitleStyle.Render(status)

	games := m.board.Games
	if len(games) == 0 {
		if m.loading {
			return lipgloss.JoinVertical(lipgloss.Left, title, statusLine)
		}
		empty := "No current games. Press 'u' to view upcoming games."
		if m.upcoming {
			empty = "No upcoming games scheduled."
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			statusLine,
			"",
			itemStyle.Render(empty),
			"",
			helpStyle.Render(toggle+" • r refresh • f pin • esc back • q quit"),
		)
	}

	visible := m.visibleGames()
	start := m.gameOffset
	end := min(start+visible, len(games))

	var b strings.Builder
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.gameCursor {
			cursor = "❯ "
		}
		b.WriteString(cursor + gameCard(games[i], i == m.gameCursor) + "\n\n")
	}

	if len(games) > visible {
		statusLine += dimStyle.Render(fmt.Sprintf(" (Showing %d-%d of %d games)", start+1, end, len(games)))
	}

	parts := []string{title, statusLine, "", b.String()}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, helpStyle.Render("↑/k up • ↓/j down • enter details • "+toggle+" • r refresh • f pin • esc back • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func gameCard(g domain.Game, selected bool) string {
	style := cardStyle
	if selected {
		style = activeCardStyle
	}

	status := dimStyle.Render(g.Status)
	if g.IsLive() {
		status = liveStyle.Render("🔴 LIVE - " + g.Status)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		status,
		"",
		teamStyle.Render(fmt.Sprintf("%-30s %3s", g.AwayTeam.Name, scoreOrDash(g.AwayTeam.Score))),
		teamStyle.Render(fmt.Sprintf("%-30s %3s", g.HomeTeam.Name, scoreOrDash(g.HomeTeam.Score))),
		"",
		dimStyle.Render("📍 "+g.Venue),
		dimStyle.Render("🕐 "+g.Date.Local().Format("Mon Jan 2, 3:04 PM")),
	))
}

func scoreOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
