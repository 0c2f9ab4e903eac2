package match

import (
	"fmt"
	"time"
)

// Match is one played or scheduled game in its canonical shape.
//
// Upstream sources disagree on field naming (match_date vs date) and on score
// encoding ("2-1", "2 - 1", or split integer columns); ingestion resolves all
// of that before a Match is constructed. FinalScore stays a raw string here
// because score parsing, including its defaulting policy, belongs to the
// stats package.
type Match struct {
	ID             int64
	HomeTeamID     int64
	AwayTeamID     int64
	FinalScore     string
	FirstHalfScore string
	MatchDate      time.Time
	League         string
	Country        string
	Season         string
}

func (m Match) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("match id must be greater than zero")
	}
	if m.HomeTeamID <= 0 {
		return fmt.Errorf("match home team id must be greater than zero")
	}
	if m.AwayTeamID <= 0 {
		return fmt.Errorf("match away team id must be greater than zero")
	}

	return nil
}

// Involves reports whether the team played in this match on either side.
func (m Match) Involves(teamID int64) bool {
	return teamID > 0 && (m.HomeTeamID == teamID || m.AwayTeamID == teamID)
}

// HasDate reports whether the source supplied a usable match date.
// A zero MatchDate means the date was missing or unparseable upstream.
func (m Match) HasDate() bool {
	return !m.MatchDate.IsZero()
}
