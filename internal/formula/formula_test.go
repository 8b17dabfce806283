package formula_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/ulikunitz/xz"

	"sportsterminal/internal/formula"
)

type entry struct {
	name string
	body string
	mode int64
	link string
}

func tarBytes(t *testing.T, entries []entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, e := range entries {
		mode := e.mode
		if mode == 0 {
			mode = 0o644
		}
		hdr := &tar.Header{Name: e.name, Mode: mode, Size: int64(len(e.body)), Typeflag: tar.TypeReg}
		switch {
		case e.link != "":
			hdr = &tar.Header{Name: e.name, Mode: 0o777, Typeflag: tar.TypeSymlink, Linkname: e.link}
		case strings.HasSuffix(e.name, "/"):
			hdr = &tar.Header{Name: e.name, Mode: 0o755, Typeflag: tar.TypeDir}
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("WriteHeader: %v", err)
		}
		if _, err := tw.Write([]byte(e.body)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func tarGz(t *testing.T, entries []entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(tarBytes(t, entries)); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func sum(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

var sourceTree = []entry{
	{name: "sportsterminal-1.0.0/"},
	{name: "sportsterminal-1.0.0/go.mod", body: "module example.com/sportsterminal\n"},
	{name: "sportsterminal-1.0.0/main.go", body: "package main\n\nfunc main() {}\n"},
}

// serve returns a server answering every path with body.
func serve(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testFormula(url, sha string) *formula.Formula {
	return &formula.Formula{
		Name:     "sportsterminal",
		Desc:     "Beautiful terminal interface for checking live sports scores",
		Homepage: "https://github.com/elliota43/sportsterminal",
		URL:      url,
		SHA256:   sha,
		License:  "MIT",
		Version:  "1.0.0",
		Binary:   "sportsterminal",
		Package:  ".",
		Strip:    1,
		LDFlags:  "-s -w",
		Test:     formula.Test{ExpectExit: 1, ExpectOutput: "Error running program"},
	}
}

func TestLoad_PackagedManifest(t *testing.T) {
	f, err := formula.Load(filepath.Join("..", "..", "packaging", "sportsterminal.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !f.ChecksumUnset() {
		t.Fatal("expected the packaged manifest to have no checksum yet")
	}
	if f.LDFlags != "-s -w" || f.Test.ExpectExit != 1 || f.Test.ExpectOutput != "Error running program" {
		t.Fatalf("unexpected manifest: %+v", f)
	}
}

func TestLoad_NormalizesChecksum(t *testing.T) {
	digest := strings.Repeat("AB", 32)
	manifest := filepath.Join(t.TempDir(), "formula.yml")
	content := "name: sportsterminal\nurl: https://example.com/archive/refs/tags/v1.0.0.tar.gz\n" +
		"sha256: \" " + digest + " \"\nversion: 1.0.0\n"
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := formula.Load(manifest)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.SHA256 != strings.ToLower(digest) {
		t.Fatalf("sha256 = %q, want lowercase digest", f.SHA256)
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	good := testFormula("https://example.com/archive/refs/tags/v1.0.0.tar.gz", "")
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	wrongTag := testFormula("https://example.com/archive/refs/tags/v1.0.1.tar.gz", "")
	if err := wrongTag.Validate(); err == nil {
		t.Fatal("expected error when url tag differs from version")
	}

	badSum := testFormula("https://example.com/archive/refs/tags/v1.0.0.tar.gz", "abc")
	if err := badSum.Validate(); err == nil {
		t.Fatal("expected error for short checksum")
	}

	badFormat := testFormula("https://example.com/archive/refs/tags/v1.0.0.rar", "")
	if err := badFormat.Validate(); err == nil {
		t.Fatal("expected error for unsupported archive")
	}
}

func TestFetch_VerifiesChecksum(t *testing.T) {
	archive := tarGz(t, sourceTree)
	srv := serve(t, archive)
	url := srv.URL + "/archive/refs/tags/v1.0.0.tar.gz"
	fe := &formula.Fetcher{HTTP: srv.Client()}
	dir := t.TempDir()

	dest := filepath.Join(dir, "ok.tar.gz")
	if err := fe.Fetch(context.Background(), testFormula(url, sum(archive)), dest); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil || !bytes.Equal(got, archive) {
		t.Fatalf("fetched archive differs: %v", err)
	}

	bad := filepath.Join(dir, "bad.tar.gz")
	err = fe.Fetch(context.Background(), testFormula(url, strings.Repeat("0", 64)), bad)
	if !eris.Is(err, formula.ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Fatalf("mismatching archive was kept: %v", err)
	}

	upper := filepath.Join(dir, "upper.tar.gz")
	if err := fe.Fetch(context.Background(), testFormula(url, strings.ToUpper(sum(archive))), upper); err != nil {
		t.Fatalf("Fetch with uppercase digest: %v", err)
	}
	if err := os.Remove(upper); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	unset := filepath.Join(dir, "unset.tar.gz")
	err = fe.Fetch(context.Background(), testFormula(url, ""), unset)
	if !eris.Is(err, formula.ErrChecksumUnset) {
		t.Fatalf("expected ErrChecksumUnset, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the verified archive, found %d files", len(entries))
	}
}

func TestExtract_Formats(t *testing.T) {
	dir := t.TempDir()

	gzPath := filepath.Join(dir, "src.tar.gz")
	if err := os.WriteFile(gzPath, tarGz(t, sourceTree), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	if _, err := xw.Write(tarBytes(t, sourceTree)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	xzPath := filepath.Join(dir, "src.tar.xz")
	if err := os.WriteFile(xzPath, xzBuf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var zipBuf bytes.Buffer
	zw := zip.NewWriter(&zipBuf)
	for _, e := range sourceTree {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		_, _ = w.Write([]byte(e.body))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	zipPath := filepath.Join(dir, "src.zip")
	if err := os.WriteFile(zipPath, zipBuf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, archive := range []string{gzPath, xzPath, zipPath} {
		dest := filepath.Join(dir, "out-"+filepath.Base(archive))
		if err := formula.Extract(archive, dest, 1); err != nil {
			t.Fatalf("Extract(%s): %v", archive, err)
		}
		got, err := os.ReadFile(filepath.Join(dest, "main.go"))
		if err != nil {
			t.Fatalf("%s: main.go missing: %v", archive, err)
		}
		if !strings.Contains(string(got), "func main()") {
			t.Fatalf("%s: unexpected main.go: %q", archive, got)
		}
	}
}

func TestExtract_RejectsTraversal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks")
	}
	tests := []struct {
		name    string
		entries []entry
	}{
		{"dotdot name", []entry{{name: "../escaped.txt", body: "x"}}},
		{"absolute link", []entry{{name: "abs", link: "/tmp"}, {name: "abs/escaped.txt", body: "x"}}},
		{"link to parent", []entry{{name: "up", link: ".."}, {name: "up/escaped.txt", body: "x"}}},
		{"chained links", []entry{
			{name: "l1", link: "."},
			{name: "l1/l2", link: ".."},
			{name: "l2/escaped.txt", body: "x"},
		}},
		{"link through earlier link", []entry{
			{name: "self", link: "."},
			{name: "hop", link: "self/../escaped.txt"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			archive := filepath.Join(dir, "evil.tar.gz")
			if err := os.WriteFile(archive, tarGz(t, tt.entries), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			err := formula.Extract(archive, filepath.Join(dir, "out"), 0)
			if !eris.Is(err, formula.ErrUnsafePath) {
				t.Fatalf("expected ErrUnsafePath, got %v", err)
			}
			if _, err := os.Lstat(filepath.Join(dir, "escaped.txt")); !os.IsNotExist(err) {
				t.Fatal("entry escaped the destination")
			}
		})
	}
}

func TestExtract_KeepsInternalSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks")
	}
	dir := t.TempDir()
	archive := filepath.Join(dir, "src.tar.gz")
	data := tarGz(t, []entry{
		{name: "pkg/"},
		{name: "pkg/real.go", body: "package pkg\n"},
		{name: "pkg/alias.go", link: "real.go"},
		{name: "cur", link: "pkg"},
		{name: "cur/extra.go", body: "package pkg\n"},
	})
	if err := os.WriteFile(archive, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	dest := filepath.Join(dir, "out")
	if err := formula.Extract(archive, dest, 0); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, p := range []string{"pkg/alias.go", "pkg/extra.go"} {
		b, err := os.ReadFile(filepath.Join(dest, p))
		if err != nil || string(b) != "package pkg\n" {
			t.Fatalf("%s: %q %v", p, b, err)
		}
	}
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

const failingApp = "echo 'Error running program: not a terminal'\nexit 1\n"

func TestSmoke(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	dir := t.TempDir()
	want := formula.Test{ExpectExit: 1, ExpectOutput: "Error running program"}

	ok := filepath.Join(dir, "ok")
	writeScript(t, ok, failingApp)
	if err := formula.Smoke(context.Background(), ok, want); err != nil {
		t.Fatalf("Smoke: %v", err)
	}

	zero := filepath.Join(dir, "zero")
	writeScript(t, zero, "echo 'Error running program'\nexit 0\n")
	var se *formula.SmokeError
	if err := formula.Smoke(context.Background(), zero, want); !errors.As(err, &se) || se.ExitCode != 0 {
		t.Fatalf("expected SmokeError with exit code 0, got %v", err)
	}

	quiet := filepath.Join(dir, "quiet")
	writeScript(t, quiet, "echo 'something else' >&2\nexit 1\n")
	if err := formula.Smoke(context.Background(), quiet, want); !errors.As(err, &se) || se.ExitCode != 1 {
		t.Fatalf("expected SmokeError for missing output, got %v", err)
	}
}

// scriptBuilder "builds" by writing a shell script to out.
type scriptBuilder struct {
	body   string
	calls  int
	ldflag string
}

func (b *scriptBuilder) Build(_ context.Context, srcDir, _, out, ldflags string) error {
	b.calls++
	b.ldflag = ldflags
	if _, err := os.Stat(filepath.Join(srcDir, "main.go")); err != nil {
		return err
	}
	return os.WriteFile(out, []byte("#!/bin/sh\n"+b.body), 0o755)
}

func TestInstall(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	archive := tarGz(t, sourceTree)
	srv := serve(t, archive)
	url := srv.URL + "/archive/refs/tags/v1.0.0.tar.gz"

	b := &scriptBuilder{body: failingApp}
	in := &formula.Installer{Fetcher: &formula.Fetcher{HTTP: srv.Client()}, Builder: b, WorkDir: t.TempDir()}
	prefix := t.TempDir()

	bin, err := in.Install(context.Background(), testFormula(url, sum(archive)), prefix)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if bin != filepath.Join(prefix, "bin", "sportsterminal") {
		t.Fatalf("binary path: %s", bin)
	}
	if b.ldflag != "-s -w" {
		t.Fatalf("ldflags: %q", b.ldflag)
	}
	if _, err := os.Stat(bin); err != nil {
		t.Fatalf("binary missing: %v", err)
	}
}

func TestInstall_MismatchInstallsNothing(t *testing.T) {
	archive := tarGz(t, sourceTree)
	srv := serve(t, archive)
	url := srv.URL + "/archive/refs/tags/v1.0.0.tar.gz"

	b := &scriptBuilder{body: failingApp}
	in := &formula.Installer{Fetcher: &formula.Fetcher{HTTP: srv.Client()}, Builder: b, WorkDir: t.TempDir()}
	prefix := t.TempDir()

	_, err := in.Install(context.Background(), testFormula(url, strings.Repeat("a", 64)), prefix)
	if !eris.Is(err, formula.ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
	if b.calls != 0 {
		t.Fatal("builder ran after a checksum mismatch")
	}
	if _, err := os.Stat(filepath.Join(prefix, "bin")); !os.IsNotExist(err) {
		t.Fatal("bin directory created after a checksum mismatch")
	}
}

func TestGoBuilder_Failure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses false(1)")
	}
	err := formula.GoBuilder{Go: "false"}.Build(context.Background(), t.TempDir(), ".", filepath.Join(t.TempDir(), "out"), "-s -w")
	var be *formula.BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected BuildError, got %v", err)
	}
}

func TestGoBuilder_BuildsAndSmokesApp(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the program")
	}
	if runtime.GOOS == "windows" {
		t.Skip("smoke expects a unix terminal check")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not on PATH")
	}
	f, err := formula.Load(filepath.Join("..", "..", "packaging", "sportsterminal.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	src, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}

	// The program resolves its home from the environment the smoke run inherits.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	bin := filepath.Join(t.TempDir(), f.Binary)
	ctx := context.Background()
	builder := formula.GoBuilder{Env: []string{"GOFLAGS=-mod=mod"}}
	if err := builder.Build(ctx, src, "./cmd/sportsterminal", bin, f.LDFlags); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := formula.Smoke(ctx, bin, f.Test); err != nil {
		t.Fatalf("Smoke: %v", err)
	}

	var se *formula.SmokeError
	err = formula.Smoke(ctx, bin, formula.Test{ExpectExit: 0, ExpectOutput: f.Test.ExpectOutput})
	if !errors.As(err, &se) || se.ExitCode != 1 {
		t.Fatalf("expected the program to exit 1 without a terminal, got %v", err)
	}
}

func TestUpdateChecksum(t *testing.T) {
	archive := tarGz(t, sourceTree)
	srv := serve(t, archive)
	manifest := filepath.Join(t.TempDir(), "formula.yml")
	content := "# recipe\nname: sportsterminal\nurl: " + srv.URL + "/archive/refs/tags/v1.0.0.tar.gz\n" +
		"sha256: \"\"\nlicense: MIT\nversion: 1.0.0\ntest:\n  expect_exit: 1\n  expect_output: Error running program\n"
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fe := &formula.Fetcher{HTTP: srv.Client()}
	digest, changed, err := formula.UpdateChecksum(context.Background(), manifest, fe)
	if err != nil {
		t.Fatalf("UpdateChecksum: %v", err)
	}
	if !changed || digest != sum(archive) {
		t.Fatalf("digest %s changed %v", digest, changed)
	}

	f, err := formula.Load(manifest)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.SHA256 != sum(archive) || f.Test.ExpectExit != 1 {
		t.Fatalf("manifest after update: %+v", f)
	}

	_, changed, err = formula.UpdateChecksum(context.Background(), manifest, fe)
	if err != nil || changed {
		t.Fatalf("second update: changed=%v err=%v", changed, err)
	}
}

func TestRender(t *testing.T) {
	f := testFormula("https://github.com/elliota43/sportsterminal/archive/refs/tags/v1.0.0.tar.gz", "")
	var buf bytes.Buffer
	if err := formula.Render(&buf, f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"class Sportsterminal < Formula",
		`url "https://github.com/elliota43/sportsterminal/archive/refs/tags/v1.0.0.tar.gz"`,
		`sha256 "" # TODO`,
		`depends_on "go" => :build`,
		`system "go", "build", *std_go_args(ldflags: "-s -w")`,
		`assert_match "Error running program", shell_output("#{bin}/sportsterminal 2>&1", 1)`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered formula missing %q:\n%s", want, out)
		}
	}

	f.SHA256 = strings.Repeat("b", 64)
	buf.Reset()
	if err := formula.Render(&buf, f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "TODO") {
		t.Fatalf("checksum flagged although set:\n%s", buf.String())
	}
}
