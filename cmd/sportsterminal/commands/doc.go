// Package commands defines the sportsterminal CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - (none)      Start the interactive scoreboard
//   - sports      List sports and leagues
//   - scores      Print a league's current or upcoming games
//   - game        Print the detail of one game
//   - favorites   Pin leagues and print their scoreboards
//   - formula     Check, fetch, build, smoke test and render the packaging recipe
//
// # Errors
//
// When the interactive scoreboard cannot run, the error is printed to stdout
// as "Error running program: <err>". Subcommand errors go to stderr as
// "Error: <err>". Both exit with status 1.
//
// # Implementation
//
// The root command loads the configuration and builds the dependency graph
// (logger, ESPN client, stores, scores service) before any subcommand runs.
// The logger travels in the command context.
package commands
