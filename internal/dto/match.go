package dto

// MatchQuery is the inbound filter for a match lookup. Dates are raw
// YYYY-MM-DD strings; validation and defaulting happen in the service.
type MatchQuery struct {
	Status   string
	DateFrom string
	DateTo   string
	Team     string
}

type MatchScore struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// MatchRecord is the reshaped match returned to callers. Score and Winner
// are only populated for finished matches.
type MatchRecord struct {
	MatchDate string      `json:"match_date"`
	Venue     string      `json:"venue"`
	HomeTeam  string      `json:"home_team"`
	AwayTeam  string      `json:"away_team"`
	Score     *MatchScore `json:"score,omitempty"`
	Winner    string      `json:"winner,omitempty"`
}
