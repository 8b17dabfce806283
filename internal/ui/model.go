package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sportsterminal/internal/catalog"
	"sportsterminal/internal/domain"
)

type screen int

const (
	sportsScreen screen = iota
	leaguesScreen
	gamesScreen
	detailScreen
)

// Options tune the refresh behavior of the model.
type Options struct {
	Interval    time.Duration
	AutoRefresh bool

	// Now is used for the "Last updated" stamp; defaults to time.Now.
	Now func() time.Time
}

// Model is the bubbletea model of the scoreboard UI.
type Model struct {
	ctx    context.Context
	scores domain.ScoresService
	opts   Options
	sports []domain.Sport

	screen screen
	sport  domain.Sport
	league domain.League
	event  domain.EventID

	sportCursor  int
	leagueCursor int
	gameCursor   int
	gameOffset   int
	detailOffset int

	width  int
	height int

	board         domain.Scoreboard
	detail        *domain.GameDetail
	pins          map[domain.LeagueID]bool
	upcoming      bool
	loading       bool
	loadingDetail bool
	lastUpdate    time.Time
	notice        string
	err           error
}

type boardKey struct {
	sport    domain.SportID
	league   domain.LeagueID
	upcoming bool
}

type boardMsg struct {
	key   boardKey
	board domain.Scoreboard
	err   error
}

type detailMsg struct {
	event  domain.EventID
	detail domain.GameDetail
	err    error
}

type pinsMsg struct {
	sport domain.SportID
	pins  map[domain.LeagueID]bool
}

type favoriteMsg struct {
	fav    domain.Favorite
	pinned bool
	err    error
}

type tickMsg time.Time

// NewModel returns a model starting on the sports screen. ctx is passed to
// every load and should carry the logger.
func NewModel(ctx context.Context, scores domain.ScoresService, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = 30 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Model{
		ctx:    ctx,
		scores: scores,
		opts:   opts,
		sports: catalog.Sports(),
		screen: sportsScreen,
		pins:   map[domain.LeagueID]bool{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) key() boardKey {
	return boardKey{sport: m.sport.ID, league: m.league.ID, upcoming: m.upcoming}
}

func (m Model) loadBoard() tea.Cmd {
	ctx, scores, key := m.ctx, m.scores, m.key()
	return func() tea.Msg {
		board, err := scores.Games(ctx, key.sport, key.league, key.upcoming)
		return boardMsg{key: key, board: board, err: err}
	}
}

func (m Model) loadDetail() tea.Cmd {
	ctx, scores := m.ctx, m.scores
	sport, league, event := m.sport.ID, m.league.ID, m.event
	return func() tea.Msg {
		d, err := scores.Detail(ctx, sport, league, event)
		return detailMsg{event: event, detail: d, err: err}
	}
}

func (m Model) loadPins() tea.Cmd {
	scores, sport := m.scores, m.sport
	return func() tea.Msg {
		pins := make(map[domain.LeagueID]bool, len(sport.Leagues))
		for _, l := range sport.Leagues {
			ok, err := scores.IsFavorite(domain.Favorite{Sport: sport.ID, League: l.ID})
			if err != nil {
				break
			}
			pins[l.ID] = ok
		}
		return pinsMsg{sport: sport.ID, pins: pins}
	}
}

func (m Model) toggleFavorite(fav domain.Favorite) tea.Cmd {
	scores := m.scores
	return func() tea.Msg {
		pinned, err := scores.ToggleFavorite(fav)
		return favoriteMsg{fav: fav, pinned: pinned, err: err}
	}
}

// visibleGames is the number of game cards that fit the terminal height.
func (m Model) visibleGames() int {
	const (
		linesPerGame  = 11
		reservedLines = 11
	)
	n := (m.height - reservedLines) / linesPerGame
	if n < 1 {
		return 1
	}
	return n
}

// detailHeight is the number of scrollable detail lines shown below the
// fixed score header.
func (m Model) detailHeight() int {
	const headerLines = 8
	n := m.height - headerLines - 4
	if n < 1 {
		return 1
	}
	return n
}
