// Package stats derives every aggregate view the dashboard renders from the
// canonical team and match collections. All functions are pure and total:
// they never mutate their inputs and never fail on structurally valid data,
// however malformed the individual records are.
package stats

import (
	"strconv"
	"strings"
)

// Score is a parsed full-time or half-time result.
type Score struct {
	Home int
	Away int
}

func (s Score) Total() int {
	return s.Home + s.Away
}

// ParseScore decodes a "2-1" style score string. Both the "H-A" and "H - A"
// delimiter forms are accepted. The function is total: a missing value yields
// 0-0 and an unparseable side defaults to 0, so a single bad record can never
// take a whole view down. Audit reports which matches were defaulted, keeping
// them distinguishable from genuine goalless draws.
func ParseScore(raw string) Score {
	score, _ := parseScore(raw)
	return score
}

func parseScore(raw string) (Score, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Score{}, false
	}

	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return Score{}, false
	}

	home, homeOK := parseGoals(parts[0])
	away, awayOK := parseGoals(parts[1])

	return Score{Home: home, Away: away}, homeOK && awayOK
}

func parseGoals(raw string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
