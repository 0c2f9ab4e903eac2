package footballapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/delilt/football-dashboard/internal/domain/match"
)

type rawTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// rawMatch accepts every layout the upstream variants are known to emit:
// scores either as a "final_score" string or as split integer columns, and
// the date under either "match_date" or "date".
type rawMatch struct {
	ID             int64   `json:"id"`
	HomeTeamID     int64   `json:"home_team_id"`
	AwayTeamID     int64   `json:"away_team_id"`
	FinalScore     *string `json:"final_score"`
	FirstHalfScore *string `json:"first_half_score"`
	HomeScore      *int    `json:"home_score"`
	AwayScore      *int    `json:"away_score"`
	MatchDate      string  `json:"match_date"`
	Date           string  `json:"date"`
	League         string  `json:"league"`
	Country        string  `json:"country"`
	Season         string  `json:"season"`
}

func normalizeMatch(item rawMatch) match.Match {
	finalScore := ""
	switch {
	case item.FinalScore != nil:
		finalScore = strings.TrimSpace(*item.FinalScore)
	case item.HomeScore != nil && item.AwayScore != nil:
		finalScore = fmt.Sprintf("%d-%d", *item.HomeScore, *item.AwayScore)
	}

	firstHalf := ""
	if item.FirstHalfScore != nil {
		firstHalf = strings.TrimSpace(*item.FirstHalfScore)
	}

	return match.Match{
		ID:             item.ID,
		HomeTeamID:     item.HomeTeamID,
		AwayTeamID:     item.AwayTeamID,
		FinalScore:     finalScore,
		FirstHalfScore: firstHalf,
		MatchDate:      parseProviderDate(firstNonEmpty(item.MatchDate, item.Date)),
		League:         strings.TrimSpace(item.League),
		Country:        strings.TrimSpace(item.Country),
		Season:         strings.TrimSpace(item.Season),
	}
}

// parseProviderDate returns the zero time when the value is missing or in no
// known layout; the stats engine treats that as an unknown date.
func parseProviderDate(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}
	}

	layouts := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC()
		}
	}

	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func newFetchPool(ctx context.Context) *pool.ContextPool {
	return pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
}
