package app

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"

	"sportsterminal/internal/logging"
)

// ConfigFile is the optional config file name inside the home directory.
const ConfigFile = "config.toml"

// Config describes all configuration options.
type Config struct {
	API struct {
		BaseURL string        `toml:"base_url" env:"BASE_URL" default:"https://site.api.espn.com/apis/site/v2/sports" usage:"ESPN site API base URL"`
		Timeout time.Duration `toml:"timeout" env:"TIMEOUT" default:"10s" usage:"Per-request timeout"`
	} `toml:"api" env:"API"`
	Refresh struct {
		Interval     time.Duration `toml:"interval" env:"INTERVAL" default:"30s" usage:"How often live scoreboards refresh"`
		Auto         bool          `toml:"auto" env:"AUTO" default:"true" usage:"Refresh scoreboards with live games automatically"`
		UpcomingDays int           `toml:"upcoming_days" env:"UPCOMING_DAYS" default:"7" usage:"Days covered by the upcoming games view"`
	} `toml:"refresh" env:"REFRESH"`
	Log struct {
		Level string `toml:"level" env:"LEVEL" default:"info" usage:"debug, info, warn or error"`
		File  string `toml:"file" env:"FILE" usage:"Log file (default <home>/sportsterminal.log)"`
		JSON  bool   `toml:"json" env:"JSON" default:"false" usage:"Write JSON lines instead of console lines"`
	} `toml:"log" env:"LOG"`
	Cache struct {
		Enabled bool `toml:"enabled" env:"ENABLED" default:"true" usage:"Keep scoreboard snapshots for offline use"`
	} `toml:"cache" env:"CACHE"`
}

// Loader initializes an empty config object and returns a Loader reading
// defaults, <home>/config.toml and SPORTSTERMINAL_* environment variables.
// Command-line flags are handled by cobra, not by the loader.
func Loader(home string) (*Config, *aconfig.Loader) {
	cfg := Config{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "SPORTSTERMINAL",
		SkipFlags: true,
		Files:     []string{filepath.Join(home, ConfigFile)},
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// LoadConfig loads and validates the configuration for home.
func LoadConfig(home string) (*Config, error) {
	cfg, loader := Loader(home)
	if err := loader.Load(); err != nil {
		return nil, eris.Wrap(err, "load config")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(home, "sportsterminal.log")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifies that all config fields have valid values.
func (cfg *Config) Validate() error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return eris.Wrapf(err, "invalid value for api.base_url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return eris.Errorf("invalid value for api.base_url: %q (must be an http or https URL)", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return eris.Errorf("invalid value for api.timeout: %s (must be positive)", cfg.API.Timeout)
	}
	if cfg.Refresh.Interval <= 0 {
		return eris.Errorf("invalid value for refresh.interval: %s (must be positive)", cfg.Refresh.Interval)
	}
	if cfg.Refresh.UpcomingDays < 1 {
		return eris.Errorf("invalid value for refresh.upcoming_days: %d (must be at least 1)", cfg.Refresh.UpcomingDays)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return eris.Wrap(err, "invalid value for log.level")
	}
	return nil
}

// LogOptions converts the log section for the logging package.
func (cfg *Config) LogOptions() logging.Options {
	return logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, JSON: cfg.Log.JSON}
}
