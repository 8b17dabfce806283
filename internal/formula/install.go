package formula

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Installer runs the full recipe.
type Installer struct {
	Fetcher *Fetcher
	Builder Builder
	// WorkDir is the parent of the temporary build directory; defaults to
	// the system temp dir.
	WorkDir string
}

// Install fetches, extracts and builds f into <prefix>/bin and smoke tests
// the installed binary. It returns the binary path. When the smoke test
// fails the binary stays installed and the *SmokeError is returned.
func (in *Installer) Install(ctx context.Context, f *Formula, prefix string) (string, error) {
	log := zerolog.Ctx(ctx).With().Str("formula", f.Name).Str("version", f.Version).Logger()

	if err := f.Validate(); err != nil {
		return "", err
	}
	if f.ChecksumUnset() {
		return "", eris.Wrapf(ErrChecksumUnset, "%s %s", f.Name, f.Version)
	}

	work, err := os.MkdirTemp(in.WorkDir, f.Name+"-build-*")
	if err != nil {
		return "", eris.Wrap(err, "create work dir")
	}
	defer os.RemoveAll(work)

	// 1. Fetch the pinned archive
	archive := filepath.Join(work, f.ArchiveName())
	log.Info().Str("url", f.URL).Msg("fetching")
	if err := in.Fetcher.Fetch(ctx, f, archive); err != nil {
		return "", err
	}

	// 2. Extract the sources
	src := filepath.Join(work, "src")
	if err := Extract(archive, src, f.Strip); err != nil {
		return "", err
	}

	// 3. Build next to the final path, then move into place
	binDir := filepath.Join(prefix, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", eris.Wrapf(err, "create %s", binDir)
	}
	bin := filepath.Join(binDir, f.Binary)
	tmpBin := filepath.Join(binDir, "."+f.Binary+".tmp")
	log.Info().Str("ldflags", f.LDFlags).Msg("building")
	if err := in.Builder.Build(ctx, src, f.Package, tmpBin, f.LDFlags); err != nil {
		_ = os.Remove(tmpBin)
		return "", err
	}
	if err := os.Rename(tmpBin, bin); err != nil {
		_ = os.Remove(tmpBin)
		return "", eris.Wrapf(err, "install %s", bin)
	}

	// 4. Smoke test the installed binary
	log.Info().Str("binary", bin).Msg("smoke testing")
	if err := Smoke(ctx, bin, f.Test); err != nil {
		return bin, err
	}
	log.Info().Str("binary", bin).Msg("installed")
	return bin, nil
}
