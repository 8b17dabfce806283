package formula

import (
	"encoding/hex"
	"os"
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Test is the post-install smoke check.
type Test struct {
	Args         []string `yaml:"args,omitempty"`
	ExpectExit   int      `yaml:"expect_exit"`
	ExpectOutput string   `yaml:"expect_output"`
}

// Formula describes how to fetch, build and verify one release.
type Formula struct {
	Name     string `yaml:"name"`
	Desc     string `yaml:"desc"`
	Homepage string `yaml:"homepage"`
	URL      string `yaml:"url"`
	SHA256   string `yaml:"sha256"`
	License  string `yaml:"license"`
	Version  string `yaml:"version"`

	// Binary is the installed file name; defaults to Name.
	Binary string `yaml:"binary,omitempty"`
	// Package is the Go package to build, relative to the source root.
	Package string `yaml:"package,omitempty"`
	// Strip drops leading path components when extracting.
	Strip   int    `yaml:"strip,omitempty"`
	LDFlags string `yaml:"ldflags,omitempty"`

	Test Test `yaml:"test"`
}

// Load reads and parses the manifest at p, filling defaults.
func Load(p string) (*Formula, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, eris.Wrapf(err, "read formula %s", p)
	}
	var f Formula
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "parse formula %s", p)
	}
	f.applyDefaults()
	return &f, nil
}

func (f *Formula) applyDefaults() {
	f.SHA256 = strings.ToLower(strings.TrimSpace(f.SHA256))
	if f.Binary == "" {
		f.Binary = f.Name
	}
	if f.Package == "" {
		f.Package = "."
	}
	if f.LDFlags == "" {
		f.LDFlags = "-s -w"
	}
}

// Validate checks the manifest. An empty checksum is not an error here; see
// ChecksumUnset.
func (f *Formula) Validate() error {
	switch {
	case f.Name == "":
		return eris.New("formula: name is required")
	case f.URL == "":
		return eris.New("formula: url is required")
	case f.Version == "":
		return eris.New("formula: version is required")
	}

	want, err := semver.StrictNewVersion(f.Version)
	if err != nil {
		return eris.Wrapf(err, "formula: invalid version %q", f.Version)
	}
	tag, err := urlVersion(f.URL)
	if err != nil {
		return err
	}
	if !tag.Equal(want) {
		return eris.Errorf("formula: url is tagged v%s but version is %s", tag, want)
	}

	if _, err := f.ArchiveFormat(); err != nil {
		return err
	}
	if f.SHA256 != "" {
		if b, err := hex.DecodeString(f.SHA256); err != nil || len(b) != 32 {
			return eris.Errorf("formula: sha256 %q is not a 64 character hex digest", f.SHA256)
		}
	}
	if f.Strip < 0 {
		return eris.Errorf("formula: strip must not be negative, got %d", f.Strip)
	}
	return nil
}

// ChecksumUnset reports whether the manifest has no sha256 yet.
func (f *Formula) ChecksumUnset() bool { return f.SHA256 == "" }

// ArchiveName is the file name of the source archive.
func (f *Formula) ArchiveName() string { return path.Base(f.URL) }

// ArchiveFormat returns the archive extension of the URL.
func (f *Formula) ArchiveFormat() (string, error) {
	return archiveFormat(f.ArchiveName())
}

var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.xz", ".zip"}

func archiveFormat(name string) (string, error) {
	for _, s := range archiveSuffixes {
		if strings.HasSuffix(name, s) {
			return s, nil
		}
	}
	return "", eris.Errorf("formula: unsupported archive %q", name)
}

// urlVersion extracts the version tag from an archive URL such as
// .../archive/refs/tags/v1.0.0.tar.gz.
func urlVersion(u string) (*semver.Version, error) {
	name := path.Base(u)
	for _, s := range archiveSuffixes {
		name = strings.TrimSuffix(name, s)
	}
	if !strings.HasPrefix(name, "v") {
		return nil, eris.Errorf("formula: url %q does not reference a version tag", u)
	}
	v, err := semver.StrictNewVersion(strings.TrimPrefix(name, "v"))
	if err != nil {
		return nil, eris.Wrapf(err, "formula: url %q does not reference a version tag", u)
	}
	return v, nil
}
