package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
)

// LeagueAll disables league filtering when used as Filter.League.
const LeagueAll = "All"

// Filter narrows a match list. Zero values leave the corresponding dimension
// unbounded; date bounds are inclusive and compare calendar days, so a match
// timestamped late on the DateTo day is still inside the window.
type Filter struct {
	League   string
	TeamID   int64
	DateFrom time.Time
	DateTo   time.Time
	Search   string
}

// IsZero reports whether no filter dimension is set, i.e. filtering would
// return the input unchanged.
func (f Filter) IsZero() bool {
	league := strings.TrimSpace(f.League)
	return (league == "" || league == LeagueAll) &&
		f.TeamID == 0 &&
		f.DateFrom.IsZero() &&
		f.DateTo.IsZero() &&
		strings.TrimSpace(f.Search) == ""
}

// FilterMatches returns the matches passing every set filter dimension, in
// the input order. The teams collection is only consulted when Search is set,
// to resolve participant names. The input slices are never mutated.
func FilterMatches(matches []match.Match, teams []team.Team, f Filter) []match.Match {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var names map[int64]string
	if search != "" {
		names = teamNameIndex(teams)
	}

	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if !matchesFilter(m, names, search, f) {
			continue
		}
		out = append(out, m)
	}

	return out
}

func matchesFilter(m match.Match, names map[int64]string, search string, f Filter) bool {
	if league := strings.TrimSpace(f.League); league != "" && league != LeagueAll && m.League != league {
		return false
	}
	if f.TeamID > 0 && !m.Involves(f.TeamID) {
		return false
	}

	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		// A match whose date never parsed cannot prove it is inside the
		// window, so date-bounded views exclude it.
		if !m.HasDate() {
			return false
		}
		day := calendarDay(m.MatchDate)
		if !f.DateFrom.IsZero() && day.Before(calendarDay(f.DateFrom)) {
			return false
		}
		if !f.DateTo.IsZero() && day.After(calendarDay(f.DateTo)) {
			return false
		}
	}

	if search != "" {
		home := strings.ToLower(names[m.HomeTeamID])
		away := strings.ToLower(names[m.AwayTeamID])
		if !strings.Contains(home, search) && !strings.Contains(away, search) {
			return false
		}
	}

	return true
}

// SortByDateAscending returns a copy of the matches ordered by match date.
// The sort is stable, so same-day matches and matches without a usable date
// keep their input order.
func SortByDateAscending(matches []match.Match) []match.Match {
	out := make([]match.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.Before(out[j].MatchDate)
	})

	return out
}

// calendarDay drops the time-of-day part; some sources deliver dates with a
// kickoff timestamp, others date-only, and the bounds must treat them alike.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func teamNameIndex(teams []team.Team) map[int64]string {
	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}
