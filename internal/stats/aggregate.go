package stats

import (
	"sort"
	"time"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
)

// LeagueCount is the number of matches observed in one league.
type LeagueCount struct {
	League  string
	Matches int
}

// AggregateByLeague counts matches per league. Only leagues present in the
// input appear; ordering is matches desc, league name asc on ties.
func AggregateByLeague(matches []match.Match) []LeagueCount {
	counts := make(map[string]int, 8)
	for _, m := range matches {
		counts[m.League]++
	}

	out := make([]LeagueCount, 0, len(counts))
	for league, n := range counts {
		out = append(out, LeagueCount{League: league, Matches: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].League < out[j].League
	})

	return out
}

// TeamGoals is one team's goal total over a set of matches.
type TeamGoals struct {
	TeamID int64
	Team   string
	Goals  int
}

// TopScorers ranks teams by goals scored across the given matches: home goals
// when playing at home, away goals otherwise. Ordering is goals desc with
// ascending team id as the tie-break, then the list is cut to the first n.
func TopScorers(matches []match.Match, teams []team.Team, n int) []TeamGoals {
	if n < 1 {
		return nil
	}

	goals := make(map[int64]int, len(teams))
	for _, m := range matches {
		score := ParseScore(m.FinalScore)
		goals[m.HomeTeamID] += score.Home
		goals[m.AwayTeamID] += score.Away
	}

	names := teamNameIndex(teams)
	out := make([]TeamGoals, 0, len(goals))
	for teamID, total := range goals {
		out = append(out, TeamGoals{TeamID: teamID, Team: names[teamID], Goals: total})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].TeamID < out[j].TeamID
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TeamRow is one line of the full per-team statistics table.
type TeamRow struct {
	Team string
	TeamRecord
}

// TeamTable builds the per-team statistics table over the given matches.
// Every known team gets a row, zeroed when it played no matches. Ordering is
// goals-for desc, team id asc on ties.
func TeamTable(matches []match.Match, teams []team.Team) []TeamRow {
	out := make([]TeamRow, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamRow{Team: t.Name, TeamRecord: ComputeRecord(matches, t.ID)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GoalsFor != out[j].GoalsFor {
			return out[i].GoalsFor > out[j].GoalsFor
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out
}

// MatchGoals pairs a match with its combined goal count.
type MatchGoals struct {
	Match      match.Match
	TotalGoals int
}

// TopScoringMatches ranks matches by combined goals desc, match id asc on
// ties, cut to the first n.
func TopScoringMatches(matches []match.Match, n int) []MatchGoals {
	if n < 1 {
		return nil
	}

	out := make([]MatchGoals, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchGoals{Match: m, TotalGoals: ParseScore(m.FinalScore).Total()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalGoals != out[j].TotalGoals {
			return out[i].TotalGoals > out[j].TotalGoals
		}
		return out[i].Match.ID < out[j].Match.ID
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TeamAverage is one team's goals-per-match average.
type TeamAverage struct {
	TeamID  int64
	Team    string
	Played  int
	Goals   int
	Average float64
}

// AverageGoals computes each team's average goals per match. A team with no
// matches averages 0 rather than dividing by zero. Ordering is average desc,
// team id asc on ties.
func AverageGoals(matches []match.Match, teams []team.Team) []TeamAverage {
	out := make([]TeamAverage, 0, len(teams))
	for _, t := range teams {
		rec := ComputeRecord(matches, t.ID)
		avg := 0.0
		if rec.Played > 0 {
			avg = float64(rec.GoalsFor) / float64(rec.Played)
		}
		out = append(out, TeamAverage{
			TeamID:  t.ID,
			Team:    t.Name,
			Played:  rec.Played,
			Goals:   rec.GoalsFor,
			Average: avg,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out
}

// DateCount is the number of matches played on one calendar day.
type DateCount struct {
	Date    time.Time
	Matches int
}

// CountByDate counts matches per calendar day in chronological order.
// Matches without a usable date are omitted.
func CountByDate(matches []match.Match) []DateCount {
	counts := make(map[time.Time]int, 32)
	for _, m := range matches {
		if !m.HasDate() {
			continue
		}
		day := time.Date(m.MatchDate.Year(), m.MatchDate.Month(), m.MatchDate.Day(), 0, 0, 0, 0, time.UTC)
		counts[day]++
	}

	out := make([]DateCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DateCount{Date: day, Matches: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}
