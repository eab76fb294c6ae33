package footballdata

// Wire shapes for the football-data.org v4 matches endpoint, trimmed to the
// fields the dashboard consumes.

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

type matchItem struct {
	ID          int64           `json:"id"`
	UTCDate     string          `json:"utcDate"`
	Status      string          `json:"status"`
	Venue       string          `json:"venue"`
	Competition competitionItem `json:"competition"`
	HomeTeam    teamItem        `json:"homeTeam"`
	AwayTeam    teamItem        `json:"awayTeam"`
	Score       *scoreItem      `json:"score"`
}

type competitionItem struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Emblem string `json:"emblem"`
}

type teamItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

type scoreItem struct {
	FullTime *scoreLine `json:"fullTime"`
}

type scoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
