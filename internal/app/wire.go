package app

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"sportsterminal/internal/domain"
	"sportsterminal/internal/espn"
	"sportsterminal/internal/logging"
	scoressvc "sportsterminal/internal/services/scores"
	"sportsterminal/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Home      string
	Config    *Config
	Log       zerolog.Logger
	Client    domain.ScoreboardClient
	Favorites domain.FavoriteStore
	Snapshots domain.SnapshotStore
	Scores    domain.ScoresService
	HTTP      *http.Client

	logFile io.Closer
}

// NewWire constructs the dependency graph for home from cfg. httpClient is
// optional; by default a client with cfg.API.Timeout is used.
func NewWire(home string, cfg *Config, httpClient *http.Client) (*Wire, error) {
	log, logFile, err := logging.New(cfg.LogOptions())
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}
	client := espn.New(cfg.API.BaseURL, httpClient)

	// File-based stores
	favorites := store.NewFavoritesFileStore(home)
	var snapshots domain.SnapshotStore
	if cfg.Cache.Enabled {
		snapshots = store.NewSnapshotFileStore(home)
	}

	scores := scoressvc.New(client, favorites, snapshots, cfg.Refresh.UpcomingDays)

	log.Debug().Str("home", home).Str("api", cfg.API.BaseURL).Msg("wired")
	return &Wire{
		Home:      home,
		Config:    cfg,
		Log:       log,
		Client:    client,
		Favorites: favorites,
		Snapshots: snapshots,
		Scores:    scores,
		HTTP:      httpClient,
		logFile:   logFile,
	}, nil
}

// Close releases the log file.
func (w *Wire) Close() error {
	if w.logFile == nil {
		return nil
	}
	return w.logFile.Close()
}
