package stats

import (
	"sort"
	"time"

	"github.com/delilt/football-dashboard/internal/domain/match"
)

// MonthGoals is one team's goal total in one calendar month.
type MonthGoals struct {
	Year  int
	Month time.Month
	Goals int
}

// MonthlyGoalTrend sums the team's goals per calendar month in chronological
// order. Grouping uses the year and numeric month index, never a localized
// month name, so December 2025 always precedes January 2026. Months in which
// the team played no matches are omitted; matches without a usable date do
// not contribute.
func MonthlyGoalTrend(matches []match.Match, teamID int64) []MonthGoals {
	totals := make(map[int]int, 12)
	for _, m := range matches {
		if !m.Involves(teamID) || !m.HasDate() {
			continue
		}

		score := ParseScore(m.FinalScore)
		own := score.Home
		if m.AwayTeamID == teamID && m.HomeTeamID != teamID {
			own = score.Away
		}

		key := m.MatchDate.Year()*12 + int(m.MatchDate.Month()) - 1
		totals[key] += own
	}

	keys := make([]int, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	out := make([]MonthGoals, 0, len(keys))
	for _, key := range keys {
		out = append(out, MonthGoals{
			Year:  key / 12,
			Month: time.Month(key%12 + 1),
			Goals: totals[key],
		})
	}

	return out
}
