package formula

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/ulikunitz/xz"
)

// ErrUnsafePath is returned for archive entries that would land outside the
// destination directory.
var ErrUnsafePath = eris.New("archive entry escapes destination")

// Extract unpacks archive into dest, dropping strip leading path components
// from every entry. The format is taken from the archive's file name.
// Directories and files are created through an os.Root opened on dest. A
// symlink is only created when its parent and target resolve inside dest,
// following the links already extracted.
func Extract(archive, dest string, strip int) error {
	format, err := archiveFormat(filepath.Base(archive))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return eris.Wrapf(err, "create %s", dest)
	}
	base, err := filepath.EvalSymlinks(dest)
	if err != nil {
		return eris.Wrapf(err, "resolve %s", dest)
	}
	root, err := os.OpenRoot(base)
	if err != nil {
		return eris.Wrapf(err, "open %s", dest)
	}
	defer root.Close()
	x := &extractor{root: root, dest: base, strip: strip}

	if format == ".zip" {
		return x.zip(archive)
	}

	f, err := os.Open(archive)
	if err != nil {
		return eris.Wrapf(err, "open %s", archive)
	}
	defer f.Close()

	var r io.Reader
	switch format {
	case ".tar.gz", ".tgz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return eris.Wrapf(err, "read gzip stream of %s", archive)
		}
		defer gz.Close()
		r = gz
	case ".tar.xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			return eris.Wrapf(err, "read xz stream of %s", archive)
		}
		r = xr
	}
	return x.tar(r)
}

type extractor struct {
	root  *os.Root
	dest  string
	strip int
}

// entryPath maps an archive entry name to a path relative to dest. ok is
// false when the entry is stripped away entirely.
func (x *extractor) entryPath(name string) (rel string, ok bool, err error) {
	name = strings.TrimPrefix(filepath.ToSlash(name), "./")
	parts := strings.Split(strings.Trim(name, "/"), "/")
	if len(parts) <= x.strip {
		return "", false, nil
	}
	rel = filepath.FromSlash(strings.Join(parts[x.strip:], "/"))
	if !filepath.IsLocal(rel) {
		return "", false, eris.Wrapf(ErrUnsafePath, "%s", name)
	}
	return rel, true, nil
}

func (x *extractor) tar(r io.Reader) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return eris.Wrap(err, "read archive entry")
		}

		rel, ok, err := x.entryPath(hdr.Name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := x.mkdirAll(rel); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := x.writeEntry(rel, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := x.symlink(rel, hdr.Linkname); err != nil {
				return eris.Wrapf(err, "%s -> %s", hdr.Name, hdr.Linkname)
			}
		}
	}
}

func (x *extractor) zip(archive string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return eris.Wrapf(err, "open %s", archive)
	}
	defer zr.Close()

	for _, item := range zr.File {
		rel, ok, err := x.entryPath(item.Name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if item.FileInfo().IsDir() {
			if err := x.mkdirAll(rel); err != nil {
				return err
			}
			continue
		}

		rc, err := item.Open()
		if err != nil {
			return eris.Wrapf(err, "open archive entry %s", item.Name)
		}
		err = x.writeEntry(rel, rc, item.Mode())
		_ = rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// mkdirAll creates rel and its parents below the root one component at a
// time.
func (x *extractor) mkdirAll(rel string) error {
	if rel == "." {
		return nil
	}
	cur := ""
	for _, c := range strings.Split(filepath.ToSlash(rel), "/") {
		cur = filepath.Join(cur, c)
		if err := x.root.Mkdir(cur, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return eris.Wrapf(err, "create %s", filepath.Join(x.dest, cur))
		}
	}
	return nil
}

func (x *extractor) writeEntry(rel string, r io.Reader, mode fs.FileMode) error {
	if err := x.mkdirAll(filepath.Dir(rel)); err != nil {
		return err
	}
	perm := mode.Perm() | 0o600
	out, err := x.root.OpenFile(rel, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return eris.Wrapf(err, "create file %s", rel)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return eris.Wrapf(err, "write extracted file %s", rel)
	}
	if err := out.Close(); err != nil {
		return eris.Wrapf(err, "close %s", rel)
	}
	return nil
}

func (x *extractor) symlink(rel, linkname string) error {
	if err := x.mkdirAll(filepath.Dir(rel)); err != nil {
		return err
	}
	parent, ok := x.resolve(x.dest, filepath.Dir(rel), 0)
	if !ok {
		return ErrUnsafePath
	}
	if _, ok := x.resolve(parent, linkname, 0); !ok {
		return ErrUnsafePath
	}
	target := filepath.Join(parent, filepath.Base(rel))
	if err := os.Symlink(linkname, target); err != nil {
		return eris.Wrapf(err, "create symlink %s", target)
	}
	return nil
}

// maxLinkDepth bounds symlink chains followed by resolve.
const maxLinkDepth = 40

// resolve walks p from dir one component at a time, following symlinks that
// already exist on disk. ok is false as soon as any step leaves dest.
func (x *extractor) resolve(dir, p string, depth int) (string, bool) {
	if depth > maxLinkDepth || filepath.IsAbs(p) {
		return "", false
	}
	cur := dir
	for _, c := range strings.Split(filepath.ToSlash(p), "/") {
		switch c {
		case "", ".":
			continue
		case "..":
			cur = filepath.Dir(cur)
		default:
			cur = filepath.Join(cur, c)
			if fi, err := os.Lstat(cur); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
				link, err := os.Readlink(cur)
				if err != nil {
					return "", false
				}
				var ok bool
				if cur, ok = x.resolve(filepath.Dir(cur), link, depth+1); !ok {
					return "", false
				}
			}
		}
		if !isWithin(x.dest, cur) {
			return "", false
		}
	}
	return cur, true
}

func isWithin(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	return err == nil && filepath.IsLocal(rel)
}
