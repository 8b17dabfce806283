package scores

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"sportsterminal/internal/catalog"
	"sportsterminal/internal/domain"
)

// maxConcurrentFetches bounds FavoriteScoreboards fan-out.
const maxConcurrentFetches = 4

// Service implements domain.ScoresService.
type Service struct {
	client       domain.ScoreboardClient
	favorites    domain.FavoriteStore
	snapshots    domain.SnapshotStore
	upcomingDays int
	now          func() time.Time
}

// New returns a scores Service. snapshots may be nil to disable the offline
// fallback.
func New(
	client domain.ScoreboardClient,
	favorites domain.FavoriteStore,
	snapshots domain.SnapshotStore,
	upcomingDays int,
) *Service {
	return &Service{
		client:       client,
		favorites:    favorites,
		snapshots:    snapshots,
		upcomingDays: upcomingDays,
		now:          time.Now,
	}
}

// Games returns the league's scoreboard.
//
// When the fetch fails and a snapshot exists, the snapshot is returned with
// Stale set and the fetch error is only logged.
func (s *Service) Games(
	ctx context.Context,
	sport domain.SportID,
	league domain.LeagueID,
	upcoming bool,
) (domain.Scoreboard, error) {
	if _, _, err := catalog.FindLeague(sport, league); err != nil {
		return domain.Scoreboard{}, err
	}
	log := zerolog.Ctx(ctx).With().Str("league", sport.String()+"/"+league.String()).Logger()

	games, err := s.client.Scoreboard(ctx, sport, league, domain.ScoreboardOptions{
		Upcoming: upcoming,
		Days:     s.upcomingDays,
	})
	if err != nil {
		if board, ok := s.snapshot(sport, league, upcoming); ok {
			log.Warn().Err(err).Time("snapshot", board.FetchedAt).Msg("scoreboard fetch failed, using snapshot")
			return board, nil
		}
		return domain.Scoreboard{}, err
	}

	SortGames(games)
	board := domain.Scoreboard{
		Sport:     sport,
		League:    league,
		Upcoming:  upcoming,
		Games:     games,
		FetchedAt: s.now(),
	}
	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(board); err != nil {
			log.Warn().Err(err).Msg("saving scoreboard snapshot")
		}
	}
	log.Debug().Int("games", len(games)).Bool("upcoming", upcoming).Msg("scoreboard loaded")
	return board, nil
}

func (s *Service) snapshot(sport domain.SportID, league domain.LeagueID, upcoming bool) (domain.Scoreboard, bool) {
	if s.snapshots == nil {
		return domain.Scoreboard{}, false
	}
	board, ok, err := s.snapshots.LoadSnapshot(sport, league, upcoming)
	if err != nil || !ok {
		return domain.Scoreboard{}, false
	}
	board.Stale = true
	return board, true
}

// Detail returns the expanded view of one game.
func (s *Service) Detail(
	ctx context.Context,
	sport domain.SportID,
	league domain.LeagueID,
	event domain.EventID,
) (domain.GameDetail, error) {
	if _, _, err := catalog.FindLeague(sport, league); err != nil {
		return domain.GameDetail{}, err
	}
	return s.client.Summary(ctx, sport, league, event)
}

// FavoriteScoreboards loads every favorite league concurrently. Results keep
// the favorites' order; a failing league is reported in its Err field and
// does not fail the others.
func (s *Service) FavoriteScoreboards(ctx context.Context) ([]domain.FavoriteScoreboard, error) {
	favs, err := s.favorites.ListFavorites()
	if err != nil {
		return nil, err
	}

	out := make([]domain.FavoriteScoreboard, len(favs))
	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, fav := range favs {
		g.Go(func() error {
			board, err := s.Games(ctx, fav.Sport, fav.League, false)
			out[i] = domain.FavoriteScoreboard{Favorite: fav, Scoreboard: board, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// IsFavorite reports whether fav is pinned.
func (s *Service) IsFavorite(fav domain.Favorite) (bool, error) {
	favs, err := s.favorites.ListFavorites()
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f == fav {
			return true, nil
		}
	}
	return false, nil
}

// ToggleFavorite pins fav if it is not pinned yet and unpins it otherwise.
// It returns true when fav ends up pinned.
func (s *Service) ToggleFavorite(fav domain.Favorite) (bool, error) {
	if _, _, err := catalog.FindLeague(fav.Sport, fav.League); err != nil {
		return false, err
	}
	removed, err := s.favorites.RemoveFavorite(fav)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	return true, s.favorites.AddFavorite(fav)
}

// SortGames orders games live first, then by start time. The sort is stable
// so games starting together keep the API order.
func SortGames(games []domain.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		li, lj := games[i].IsLive(), games[j].IsLive()
		if li != lj {
			return li
		}
		return games[i].Date.Before(games[j].Date)
	})
}

// HasLive reports whether any game is in progress.
func HasLive(games []domain.Game) bool {
	for _, g := range games {
		if g.IsLive() {
			return true
		}
	}
	return false
}

// Compile-time assertion that Service implements domain.ScoresService.
var _ domain.ScoresService = (*Service)(nil)
