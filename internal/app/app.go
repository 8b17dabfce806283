package app

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// ResolveHome picks the state directory: the explicit value, then
// $XDG_CONFIG_HOME/sportsterminal, then ~/.sportsterminal. The directory is
// created with 0700 permissions.
func ResolveHome(explicit string) (string, error) {
	home := explicit
	if home == "" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			home = filepath.Join(xdg, "sportsterminal")
		} else {
			dir, err := os.UserHomeDir()
			if err != nil {
				return "", eris.Wrap(err, "locate user home directory")
			}
			home = filepath.Join(dir, ".sportsterminal")
		}
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return "", eris.Wrapf(err, "create %s", home)
	}
	return home, nil
}
