package ui

import (
	"os"
	"strings"
)

var envLookup = os.Getenv

// imageCapable reports whether the terminal can show inline images (kitty,
// iTerm2 or WezTerm).
func imageCapable(getenv func(string) string) bool {
	term, program := getenv("TERM"), getenv("TERM_PROGRAM")
	switch {
	case strings.Contains(term, "kitty"), program == "kitty":
		return true
	case program == "iTerm.app":
		return true
	case strings.Contains(term, "wezterm"), program == "WezTerm":
		return true
	}
	return false
}

// teamColors maps a team nickname to a glyph in the team's main color.
// Checked in order; nicknames shared across leagues resolve to the first.
var teamColors = []struct{ keyword, glyph string }{
	// basketball
	{"lakers", "🟡"}, {"warriors", "🏀"}, {"celtics", "🟢"}, {"bulls", "🔴"},
	{"heat", "🔥"}, {"spurs", "⚫"}, {"pistons", "🔵"}, {"cavaliers", "🏹"},
	{"knicks", "🟠"}, {"hornets", "🟣"}, {"nets", "⚫"}, {"76ers", "🔵"},
	{"raptors", "🔴"}, {"hawks", "🔴"}, {"magic", "🔵"}, {"wizards", "🔴"},
	{"bucks", "🟢"}, {"pacers", "🟡"}, {"rockets", "🔴"}, {"mavericks", "🔵"},
	{"grizzlies", "🔵"}, {"pelicans", "🟣"}, {"suns", "🟡"}, {"jazz", "🟡"},
	{"nuggets", "🔵"}, {"timberwolves", "🟢"}, {"thunder", "🟡"}, {"blazers", "🔴"},
	{"kings", "🟣"}, {"clippers", "🔵"},
	// football
	{"patriots", "🔴"}, {"bills", "🔴"}, {"dolphins", "🔵"}, {"jets", "🟢"},
	{"steelers", "🟡"}, {"ravens", "🟣"}, {"browns", "🟠"}, {"bengals", "🟠"},
	{"texans", "🔴"}, {"colts", "🔵"}, {"jaguars", "🟢"}, {"titans", "🔵"},
	{"chiefs", "🔴"}, {"raiders", "⚫"}, {"chargers", "🔵"}, {"broncos", "🟠"},
	{"cowboys", "🔵"}, {"eagles", "🟢"}, {"giants", "🔵"}, {"commanders", "🔴"},
	{"packers", "🟢"}, {"vikings", "🟣"}, {"bears", "🟠"}, {"lions", "🔵"},
	{"falcons", "🔴"}, {"panthers", "🔵"}, {"saints", "🟣"}, {"buccaneers", "🔴"},
	{"cardinals", "🔴"}, {"49ers", "🔴"}, {"seahawks", "🟢"}, {"rams", "🟡"},
	// baseball
	{"yankees", "🔵"}, {"red sox", "🔴"}, {"blue jays", "🔵"}, {"orioles", "🟠"},
	{"rays", "🔵"}, {"astros", "🟠"}, {"angels", "🔴"}, {"athletics", "🟢"},
	{"mariners", "🔵"}, {"rangers", "🔴"}, {"twins", "🔵"}, {"white sox", "⚫"},
	{"guardians", "🔵"}, {"tigers", "🟠"}, {"royals", "🔵"}, {"braves", "🔴"},
	{"mets", "🔵"}, {"phillies", "🔴"}, {"marlins", "🔵"}, {"nationals", "🔴"},
	{"cubs", "🔵"}, {"brewers", "🟡"}, {"pirates", "⚫"}, {"reds", "🔴"},
	{"dodgers", "🔵"}, {"padres", "🟡"}, {"diamondbacks", "🔴"}, {"rockies", "🟣"},
}

// teamGlyph returns the color glyph of the team, or a trophy.
func teamGlyph(name string) string {
	name = strings.ToLower(name)
	for _, tc := range teamColors {
		if strings.Contains(name, tc.keyword) {
			return tc.glyph
		}
	}
	return "🏆"
}
