// Package espn provides an HTTP implementation of the domain.ScoreboardClient
// interface backed by the public ESPN site API.
//
// Endpoints
//
//	GET {base}/{sport}/{league}/scoreboard[?dates=YYYYMMDD-YYYYMMDD]
//	    Games of the current day, or of a date range for upcoming games.
//
//	GET {base}/{sport}/{league}/summary?event={id}
//	    Header, box score, leaders and play-by-play of one game.
//
// The wire structs in wire.go only declare the fields sportsterminal reads;
// mapping.go turns them into domain types. Non-2xx statuses are returned as
// *StatusError carrying the full URL and status code.
package espn
