package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"sportsterminal/internal/domain"
)

const (
	// DefaultBaseURL is the public ESPN site API root.
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	// DefaultUpcomingDays is the look-ahead used when ScoreboardOptions.Days is unset.
	DefaultUpcomingDays = 7

	dateLayout = "20060102"
)

// ErrNoCompetition is returned when a summary carries no competition block.
var ErrNoCompetition = eris.New("summary has no competition")

// StatusError reports a non-2xx answer from the API.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("espn: GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Client talks to the ESPN site API.
type Client struct {
	Base string
	HTTP *http.Client

	// Now is used to compute upcoming date ranges; nil means time.Now.
	Now func() time.Time
}

// New returns a Client for base using httpClient, falling back to
// DefaultBaseURL and http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

// Scoreboard returns the games of a league.
func (c *Client) Scoreboard(
	ctx context.Context,
	sport domain.SportID,
	league domain.LeagueID,
	opts domain.ScoreboardOptions,
) ([]domain.Game, error) {
	q := url.Values{}
	if opts.Upcoming {
		days := opts.Days
		if days <= 0 {
			days = DefaultUpcomingDays
		}
		now := c.clock()
		q.Set("dates", now.Format(dateLayout)+"-"+now.AddDate(0, 0, days).Format(dateLayout))
	}

	var resp scoreboardResponse
	if err := c.getJSON(ctx, leaguePath(sport, league, "scoreboard"), q, &resp); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(resp.Events))
	for _, ev := range resp.Events {
		g, ok := mapEvent(ev)
		if !ok {
			continue
		}
		if opts.Upcoming && g.State != domain.StateScheduled {
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

// Summary returns the detail of one game.
func (c *Client) Summary(
	ctx context.Context,
	sport domain.SportID,
	league domain.LeagueID,
	event domain.EventID,
) (domain.GameDetail, error) {
	q := url.Values{}
	q.Set("event", event.String())

	var resp summaryResponse
	if err := c.getJSON(ctx, leaguePath(sport, league, "summary"), q, &resp); err != nil {
		return domain.GameDetail{}, err
	}
	return mapSummary(sport, league, event, resp)
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.Base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return eris.Wrapf(err, "build request %s", u)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return eris.Wrapf(err, "fetch %s", u)
	}
	defer resp.Body.Close()

	zerolog.Ctx(ctx).Debug().
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("espn request")

	if resp.StatusCode/100 != 2 {
		return &StatusError{URL: u, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return eris.Wrapf(err, "decode %s", u)
	}
	return nil
}

func (c *Client) clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func leaguePath(sport domain.SportID, league domain.LeagueID, endpoint string) string {
	return "/" + url.PathEscape(sport.String()) + "/" + url.PathEscape(league.String()) + "/" + endpoint
}

// Compile-time assertion that Client implements domain.ScoreboardClient.
var _ domain.ScoreboardClient = (*Client)(nil)
