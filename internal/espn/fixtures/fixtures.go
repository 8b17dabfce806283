// Package fixtures embeds canned ESPN API responses.
//
// They back the client tests and the espnfixture development server, so the
// terminal UI can be exercised without network access.
package fixtures

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var files embed.FS

const (
	Scoreboard = "scoreboard.json"
	Summary    = "summary.json"
)

// FS returns the embedded fixture files.
func FS() fs.FS { return files }

// Read returns the contents of the named fixture.
func Read(name string) ([]byte, error) { return files.ReadFile(name) }
