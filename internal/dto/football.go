package dto

// Wire types for the football-data.org v4 API.

const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
)

const (
	WinnerHomeTeam = "HOME_TEAM"
	WinnerAwayTeam = "AWAY_TEAM"
	WinnerDraw     = "DRAW"
)

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TeamsPage struct {
	Teams []Team `json:"teams"`
}

type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type MatchScoreBlock struct {
	// Winner is the upstream three-way code; null until the match finishes.
	Winner   *string   `json:"winner"`
	FullTime ScorePair `json:"fullTime"`
}

type Match struct {
	ID       int              `json:"id"`
	UTCDate  string           `json:"utcDate"`
	Status   string           `json:"status"`
	Venue    string           `json:"venue"`
	HomeTeam TeamRef          `json:"homeTeam"`
	AwayTeam TeamRef          `json:"awayTeam"`
	Score    *MatchScoreBlock `json:"score,omitempty"`
}

type MatchesPage struct {
	Matches []Match `json:"matches"`
}

// MatchFilter narrows a matches fetch. A set TeamID redirects the fetch to
// the team-scoped endpoint.
type MatchFilter struct {
	TeamID   *int
	Status   string
	DateFrom string
	DateTo   string
}
