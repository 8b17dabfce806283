package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sportsterminal/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != "https://site.api.espn.com/apis/site/v2/sports" {
		t.Fatalf("base url: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second || cfg.Refresh.Interval != 30*time.Second {
		t.Fatalf("durations: %s %s", cfg.API.Timeout, cfg.Refresh.Interval)
	}
	if !cfg.Refresh.Auto || !cfg.Cache.Enabled || cfg.Refresh.UpcomingDays != 7 {
		t.Fatalf("flags: %+v %+v", cfg.Refresh, cfg.Cache)
	}
	if cfg.Log.File != filepath.Join(home, "sportsterminal.log") {
		t.Fatalf("log file: %q", cfg.Log.File)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	toml := "[refresh]\ninterval = \"1m\"\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(home, app.ConfigFile), []byte(toml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SPORTSTERMINAL_API_BASE_URL", "http://127.0.0.1:8090")

	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Refresh.Interval != time.Minute || cfg.Log.Level != "debug" {
		t.Fatalf("file values not applied: %s %s", cfg.Refresh.Interval, cfg.Log.Level)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:8090" {
		t.Fatalf("env value not applied: %q", cfg.API.BaseURL)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, err := app.LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	bad := *cfg
	bad.Log.Level = "chatty"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for log level")
	}

	bad = *cfg
	bad.API.BaseURL = "ftp://example.com"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for base url scheme")
	}

	bad = *cfg
	bad.Refresh.Interval = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for refresh interval")
	}
}

func TestResolveHome_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	got, err := app.ResolveHome(dir)
	if err != nil {
		t.Fatalf("ResolveHome: %v", err)
	}
	fi, err := os.Stat(got)
	if err != nil || !fi.IsDir() {
		t.Fatalf("home not created: %v", err)
	}
	if fi.Mode().Perm() != 0o700 {
		t.Fatalf("mode: %v", fi.Mode().Perm())
	}
}

func TestResolveHome_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	got, err := app.ResolveHome("")
	if err != nil {
		t.Fatalf("ResolveHome: %v", err)
	}
	if got != filepath.Join(xdg, "sportsterminal") {
		t.Fatalf("got %q", got)
	}
}
