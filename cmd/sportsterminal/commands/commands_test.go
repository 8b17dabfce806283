package commands_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"sportsterminal/cmd/sportsterminal/commands"
	"sportsterminal/internal/espn/fixtures"
)

type result struct {
	err    error
	stdout string
	stderr string
}

// run executes the CLI in-process with a non-terminal stdin.
func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	err := commands.Execute(context.Background(), args, strings.NewReader(""), &out, &errOut)
	return result{err: err, stdout: out.String(), stderr: errOut.String()}
}

func fixtureAPI(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(fixtures.NewRouter(zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRoot_NoTerminal(t *testing.T) {
	r := run(t, "--home", t.TempDir())
	if r.err == nil {
		t.Fatal("expected an error without a terminal")
	}
	if !strings.Contains(r.stdout, "Error running program") {
		t.Fatalf("stdout: %q", r.stdout)
	}
}

func TestRoot_BadConfigIsProgramError(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("[log]\nlevel = \"chatty\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	r := run(t, "--home", home)
	if r.err == nil || !strings.Contains(r.stdout, "Error running program") {
		t.Fatalf("expected program error, got err=%v stdout=%q", r.err, r.stdout)
	}
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		r := run(t, flag)
		if r.err != nil {
			t.Fatalf("%s: %v", flag, r.err)
		}
		if r.stdout != "sportsterminal version 1.0.0\n" {
			t.Fatalf("%s: %q", flag, r.stdout)
		}
	}
}

func TestSports(t *testing.T) {
	r := run(t, "--home", t.TempDir(), "sports")
	if r.err != nil {
		t.Fatalf("sports: %v", r.err)
	}
	for _, want := range []string{"Basketball", "mens-college-basketball", "uefa.champions"} {
		if !strings.Contains(r.stdout, want) {
			t.Fatalf("missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestScores(t *testing.T) {
	api := fixtureAPI(t)
	r := run(t, "--home", t.TempDir(), "--api", api, "scores", "basketball", "nba")
	if r.err != nil {
		t.Fatalf("scores: %v\n%s", r.err, r.stderr)
	}
	for _, want := range []string{"Chicago Bulls", "Boston Celtics", "LIVE"} {
		if !strings.Contains(r.stdout, want) {
			t.Fatalf("missing %q:\n%s", want, r.stdout)
		}
	}
	// Live games come first.
	if strings.Index(r.stdout, "Chicago Bulls") > strings.Index(r.stdout, "Boston Celtics") {
		t.Fatalf("live game not listed first:\n%s", r.stdout)
	}
}

func TestScores_UnknownLeague(t *testing.T) {
	r := run(t, "--home", t.TempDir(), "--api", fixtureAPI(t), "scores", "curling", "world")
	if r.err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(r.stderr, "Error: ") || strings.Contains(r.stdout, "Error running program") {
		t.Fatalf("subcommand error reported wrong: stdout=%q stderr=%q", r.stdout, r.stderr)
	}
}

func TestGame(t *testing.T) {
	r := run(t, "--home", t.TempDir(), "--api", fixtureAPI(t), "game", "basketball", "nba", "401585002")
	if r.err != nil {
		t.Fatalf("game: %v\n%s", r.err, r.stderr)
	}
	for _, want := range []string{"Venue: United Center", "Attendance: 20,917", "Recent plays"} {
		if !strings.Contains(r.stdout, want) {
			t.Fatalf("missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestFavorites(t *testing.T) {
	home, api := t.TempDir(), fixtureAPI(t)

	if r := run(t, "--home", home, "favorites", "add", "basketball", "nba"); r.err != nil {
		t.Fatalf("add: %v", r.err)
	}
	if r := run(t, "--home", home, "favorites", "add", "curling", "world"); r.err == nil {
		t.Fatal("expected error adding unknown league")
	}

	r := run(t, "--home", home, "favorites", "list")
	if r.err != nil || strings.TrimSpace(r.stdout) != "basketball/nba" {
		t.Fatalf("list: err=%v out=%q", r.err, r.stdout)
	}

	r = run(t, "--home", home, "--api", api, "favorites", "scores")
	if r.err != nil || !strings.Contains(r.stdout, "NBA") || !strings.Contains(r.stdout, "Chicago Bulls") {
		t.Fatalf("scores: err=%v out=%s", r.err, r.stdout)
	}

	if r := run(t, "--home", home, "favorites", "remove", "basketball", "nba"); r.err != nil {
		t.Fatalf("remove: %v", r.err)
	}
	if r := run(t, "--home", home, "favorites", "remove", "basketball", "nba"); r.err == nil {
		t.Fatal("expected error removing a league that is not pinned")
	}
}

func TestFormula_CheckFlagsEmptyChecksum(t *testing.T) {
	manifest := filepath.Join("..", "..", "..", "packaging", "sportsterminal.yml")
	r := run(t, "--home", t.TempDir(), "formula", "check", "--manifest", manifest)
	if r.err == nil {
		t.Fatal("expected the unset checksum to be flagged")
	}
	if !strings.Contains(r.stderr, "no sha256 checksum") {
		t.Fatalf("stderr: %q", r.stderr)
	}
}

func TestFormula_Render(t *testing.T) {
	manifest := filepath.Join("..", "..", "..", "packaging", "sportsterminal.yml")
	r := run(t, "--home", t.TempDir(), "formula", "render", "--manifest", manifest)
	if r.err != nil {
		t.Fatalf("render: %v", r.err)
	}
	if !strings.Contains(r.stdout, "class Sportsterminal < Formula") ||
		!strings.Contains(r.stdout, `*std_go_args(ldflags: "-s -w")`) {
		t.Fatalf("render output:\n%s", r.stdout)
	}
}

func TestFormula_IgnoresAppConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("[log]\nlevel = \"chatty\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	manifest := filepath.Join("..", "..", "..", "packaging", "sportsterminal.yml")
	r := run(t, "--home", home, "formula", "render", "--manifest", manifest)
	if r.err != nil {
		t.Fatalf("render with a broken app config: %v", r.err)
	}
	if !strings.Contains(r.stdout, "class Sportsterminal < Formula") {
		t.Fatalf("render output:\n%s", r.stdout)
	}
	if _, err := os.Stat(filepath.Join(home, "sportsterminal.log")); !os.IsNotExist(err) {
		t.Fatalf("formula commands opened the app log: %v", err)
	}
}
