// Package catalog lists the sports and leagues sportsterminal can browse.
//
// The identifiers are the path segments of the ESPN site API
// (/{sport}/{league}/scoreboard), so a catalog entry is all that is needed
// to request a league's games.
package catalog
