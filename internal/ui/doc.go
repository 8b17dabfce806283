// Package ui implements the interactive scoreboard as a bubbletea program.
//
// Screens
//
//   - sports    Pick a sport from the catalog
//   - leagues   Pick a league; favorites are marked with a star
//   - games     Current or upcoming games of the league, live games first
//   - detail    Score header plus game info, leaders, team stats and plays
//
// Keys
//
//	q, ctrl+c          quit
//	esc, backspace     back
//	up/k, down/j       move the cursor or scroll
//	enter, right, l    select
//	r                  refresh the games list
//	u                  toggle current/upcoming games
//	f                  pin or unpin the league
//
// # Refresh
//
// A tick fires every Options.Interval. When auto refresh is on and the games
// screen shows at least one live game, the scoreboard is reloaded. Results of
// loads that no longer match the screen (the user moved on) are dropped.
package ui
