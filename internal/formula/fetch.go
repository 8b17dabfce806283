package formula

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/schollz/progressbar/v3"
)

var (
	// ErrChecksumUnset is returned when a formula without sha256 is fetched.
	ErrChecksumUnset = eris.New("formula has no sha256 checksum")
	// ErrChecksumMismatch is returned when the downloaded archive does not
	// hash to the declared sha256.
	ErrChecksumMismatch = eris.New("checksum mismatch")
)

// Fetcher downloads source archives.
type Fetcher struct {
	HTTP *http.Client
	// Progress receives a download progress bar; nil hides it.
	Progress io.Writer
}

// Fetch downloads f.URL to dest. The file only appears at dest when its
// SHA-256 equals f.SHA256.
func (fe *Fetcher) Fetch(ctx context.Context, f *Formula, dest string) error {
	if f.ChecksumUnset() {
		return eris.Wrapf(ErrChecksumUnset, "%s %s", f.Name, f.Version)
	}
	_, err := fe.download(ctx, f.URL, dest, f.SHA256)
	return err
}

// Digest downloads url and returns its hex SHA-256 without keeping the file.
func (fe *Fetcher) Digest(ctx context.Context, url string) (string, error) {
	return fe.download(ctx, url, "", "")
}

// download streams url into a temp file next to dest while hashing it. When
// want is set and differs from the digest, the temp file is removed. An empty
// dest discards the content.
func (fe *Fetcher) download(ctx context.Context, url, dest, want string) (string, error) {
	dir := os.TempDir()
	if dest != "" {
		dir = filepath.Dir(dest)
	}
	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", eris.Wrap(err, "create download file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", eris.Wrapf(err, "build request for %s", url)
	}
	client := fe.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", eris.Wrapf(err, "start download of %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", eris.Errorf("download %s: %s", url, resp.Status)
	}

	hash := sha256.New()
	bar := fe.bar(resp.ContentLength)
	if _, err := io.Copy(io.MultiWriter(tmp, hash, bar), resp.Body); err != nil {
		return "", eris.Wrapf(err, "download %s", url)
	}
	_ = bar.Finish()
	if err := tmp.Close(); err != nil {
		return "", eris.Wrap(err, "close download file")
	}

	digest := hex.EncodeToString(hash.Sum(nil))
	if want != "" && !strings.EqualFold(digest, strings.TrimSpace(want)) {
		return digest, eris.Wrapf(ErrChecksumMismatch, "%s: got %s, want %s", url, digest, want)
	}
	if dest == "" {
		return digest, nil
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return digest, eris.Wrapf(err, "move download to %s", dest)
	}
	return digest, nil
}

func (fe *Fetcher) bar(length int64) *progressbar.ProgressBar {
	if fe.Progress == nil || os.Getenv("CI") == "true" {
		return progressbar.NewOptions64(length,
			progressbar.OptionSetWriter(io.Discard),
			progressbar.OptionSetVisibility(false),
		)
	}
	return progressbar.NewOptions64(length,
		progressbar.OptionSetWriter(fe.Progress),
		progressbar.OptionSetDescription("download"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(fe.Progress, "\n")
		}),
	)
}
