package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sportsterminal/internal/catalog"
	"sportsterminal/internal/domain"
	"sportsterminal/internal/services/scores"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampGames()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.move(-1), nil
		case tea.MouseButtonWheelDown:
			return m.move(1), nil
		}
		return m, nil

	case boardMsg:
		if msg.key != m.key() || (m.screen != gamesScreen && m.screen != detailScreen) {
			return m, nil
		}
		m.loading = false
		if m.screen == detailScreen {
			// A refresh finishing behind the detail screen must not clobber it.
			if msg.err == nil {
				m.board = msg.board
				m.lastUpdate = m.opts.Now()
			}
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.board = domain.Scoreboard{}
		} else {
			m.err = nil
			m.board = msg.board
			m.lastUpdate = m.opts.Now()
		}
		m.clampGames()
		return m, nil

	case detailMsg:
		if m.screen != detailScreen || msg.event != m.event {
			return m, nil
		}
		m.loadingDetail = false
		if msg.err != nil {
			m.err = msg.err
			m.detail = nil
			return m, nil
		}
		d := msg.detail
		m.err = nil
		m.detail = &d
		return m, nil

	case pinsMsg:
		if msg.sport == m.sport.ID {
			m.pins = msg.pins
		}
		return m, nil

	case favoriteMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Could not update favorites: %v", msg.err)
			return m, nil
		}
		if msg.fav.Sport == m.sport.ID {
			m.pins[msg.fav.League] = msg.pinned
		}
		name := msg.fav.League.String()
		if _, l, err := catalog.FindLeague(msg.fav.Sport, msg.fav.League); err == nil {
			name = l.Name
		}
		if msg.pinned {
			m.notice = "★ Pinned " + name
		} else {
			m.notice = "Unpinned " + name
		}
		return m, nil

	case tickMsg:
		if m.opts.AutoRefresh && m.screen == gamesScreen && !m.loading && scores.HasLive(m.board.Games) {
			m.loading = true
			return m, tea.Batch(m.loadBoard(), m.tick())
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "backspace":
		return m.back(), nil

	case "up", "k":
		return m.move(-1), nil

	case "down", "j":
		return m.move(1), nil

	case "enter", "right", "l":
		return m.enter()

	case "r":
		if m.screen == gamesScreen {
			m.loading = true
			return m, m.loadBoard()
		}

	case "u":
		if m.screen == gamesScreen {
			m.upcoming = !m.upcoming
			m.loading = true
			m.err = nil
			m.gameCursor, m.gameOffset = 0, 0
			return m, m.loadBoard()
		}

	case "f":
		switch m.screen {
		case leaguesScreen:
			if m.leagueCursor < len(m.sport.Leagues) {
				l := m.sport.Leagues[m.leagueCursor]
				return m, m.toggleFavorite(domain.Favorite{Sport: m.sport.ID, League: l.ID})
			}
		case gamesScreen:
			return m, m.toggleFavorite(domain.Favorite{Sport: m.sport.ID, League: m.league.ID})
		}
	}
	return m, nil
}

// back leaves the current screen and resets the state it owned.
func (m Model) back() Model {
	m.notice = ""
	switch m.screen {
	case leaguesScreen:
		m.screen = sportsScreen
		m.leagueCursor = 0
		m.pins = map[domain.LeagueID]bool{}
	case gamesScreen:
		m.screen = leaguesScreen
		m.gameCursor, m.gameOffset = 0, 0
		m.board = domain.Scoreboard{}
		m.loading = false
		m.err = nil
	case detailScreen:
		m.screen = gamesScreen
		m.detail = nil
		m.detailOffset = 0
		m.loadingDetail = false
		m.err = nil
	}
	return m
}

func (m Model) move(delta int) Model {
	switch m.screen {
	case sportsScreen:
		m.sportCursor = clamp(m.sportCursor+delta, 0, len(m.sports)-1)
	case leaguesScreen:
		m.leagueCursor = clamp(m.leagueCursor+delta, 0, len(m.sport.Leagues)-1)
	case gamesScreen:
		m.gameCursor = clamp(m.gameCursor+delta, 0, len(m.board.Games)-1)
		m.clampGames()
	case detailScreen:
		maxOffset := len(m.detailLines()) - m.detailHeight()
		m.detailOffset = clamp(m.detailOffset+delta, 0, maxOffset)
	}
	return m
}

func (m Model) enter() (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.screen {
	case sportsScreen:
		if m.sportCursor < len(m.sports) {
			m.sport = m.sports[m.sportCursor]
			m.screen = leaguesScreen
			m.leagueCursor = 0
			return m, m.loadPins()
		}
	case leaguesScreen:
		if m.leagueCursor < len(m.sport.Leagues) {
			m.league = m.sport.Leagues[m.leagueCursor]
			m.screen = gamesScreen
			m.upcoming = false
			m.loading = true
			m.err = nil
			m.board = domain.Scoreboard{}
			m.gameCursor, m.gameOffset = 0, 0
			return m, m.loadBoard()
		}
	case gamesScreen:
		if m.gameCursor < len(m.board.Games) {
			m.event = m.board.Games[m.gameCursor].ID
			m.screen = detailScreen
			m.detail = nil
			m.loadingDetail = true
			m.detailOffset = 0
			m.err = nil
			return m, m.loadDetail()
		}
	}
	return m, nil
}

// clampGames keeps the game cursor inside the list and the scroll window
// around the cursor.
func (m *Model) clampGames() {
	m.gameCursor = clamp(m.gameCursor, 0, len(m.board.Games)-1)
	visible := m.visibleGames()
	if m.gameCursor < m.gameOffset {
		m.gameOffset = m.gameCursor
	}
	if m.gameCursor >= m.gameOffset+visible {
		m.gameOffset = m.gameCursor - visible + 1
	}
	m.gameOffset = clamp(m.gameOffset, 0, len(m.board.Games)-visible)
}

// clamp limits v to [lo, hi]; when hi < lo the result is lo.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
