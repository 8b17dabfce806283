package espn

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Date         string        `json:"date"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Venue       venue        `json:"venue"`
	Status      status       `json:"status"`
	Competitors []competitor `json:"competitors"`
}

type venue struct {
	FullName string `json:"fullName"`
}

type status struct {
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         statusType `json:"type"`
}

type statusType struct {
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
}

type competitor struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
	Winner   bool   `json:"winner"`
	Score    string `json:"score"`
	Team     team   `json:"team"`

	// Scoreboards call it records, summaries call it record.
	Records []record `json:"records"`
	Record  []record `json:"record"`
}

type team struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Logo             string `json:"logo"`
	Logos            []struct {
		Href string `json:"href"`
	} `json:"logos"`
}

type record struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type summaryResponse struct {
	Header struct {
		ID           string        `json:"id"`
		Competitions []competition `json:"competitions"`
	} `json:"header"`
	GameInfo struct {
		Venue      venue `json:"venue"`
		Attendance int   `json:"attendance"`
	} `json:"gameInfo"`
	Boxscore struct {
		Teams []boxscoreTeam `json:"teams"`
	} `json:"boxscore"`
	Leaders      []teamLeaders `json:"leaders"`
	Plays        []play        `json:"plays"`
	ScoringPlays []play        `json:"scoringPlays"`
	KeyEvents    []play        `json:"keyEvents"`
}

type boxscoreTeam struct {
	Team       team   `json:"team"`
	HomeAway   string `json:"homeAway"`
	Statistics []struct {
		Name         string `json:"name"`
		Label        string `json:"label"`
		DisplayValue string `json:"displayValue"`
	} `json:"statistics"`
}

type teamLeaders struct {
	Team    team `json:"team"`
	Leaders []struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Leaders     []struct {
			DisplayValue string `json:"displayValue"`
			Athlete      struct {
				DisplayName string `json:"displayName"`
			} `json:"athlete"`
		} `json:"leaders"`
	} `json:"leaders"`
}

type play struct {
	Text   string `json:"text"`
	Period struct {
		Number       int    `json:"number"`
		DisplayValue string `json:"displayValue"`
	} `json:"period"`
	Clock struct {
		DisplayValue string `json:"displayValue"`
	} `json:"clock"`
	ScoringPlay bool `json:"scoringPlay"`
}
