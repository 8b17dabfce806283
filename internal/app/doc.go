// Package app wires application dependencies for the CLI.
//
// It resolves the home directory, loads Config (defaults, config.toml and
// SPORTSTERMINAL_* variables, via aconfig), and builds the logger, ESPN
// client, file stores and scores service, exposing them via the Wire struct
// for commands to use.
package app
