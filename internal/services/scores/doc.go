// Package scores loads scoreboards and game details for the UI and the CLI.
//
// It validates leagues against the catalog, orders games (live first, then
// by start time), keeps a snapshot of every scoreboard it fetched and falls
// back to that snapshot, marked stale, when the API cannot be reached. It
// also owns the favorites workflow: toggling a league and fetching every
// favorite league concurrently.
package scores
