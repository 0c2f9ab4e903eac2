package stats

import "github.com/delilt/football-dashboard/internal/domain/match"

// Report lists the matches the engine could not take at face value: scores
// that were defaulted rather than parsed, and dates that never parsed. It
// keeps defaulted 0-0 results distinguishable from genuine goalless draws.
type Report struct {
	DefaultedScores []int64
	UnknownDates    []int64
}

func (r Report) Clean() bool {
	return len(r.DefaultedScores) == 0 && len(r.UnknownDates) == 0
}

// Audit inspects every match and reports the ones whose score or date was
// degraded to a safe default.
func Audit(matches []match.Match) Report {
	var report Report
	for _, m := range matches {
		if _, exact := parseScore(m.FinalScore); !exact {
			report.DefaultedScores = append(report.DefaultedScores, m.ID)
		}
		if !m.HasDate() {
			report.UnknownDates = append(report.UnknownDates, m.ID)
		}
	}

	return report
}
