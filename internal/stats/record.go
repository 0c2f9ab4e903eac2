package stats

import "github.com/delilt/football-dashboard/internal/domain/match"

// TeamRecord is one team's tally over a set of matches.
// Wins+Draws+Losses always equals Played.
type TeamRecord struct {
	TeamID       int64
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// ComputeRecord tallies wins, draws, losses and goals for the team across the
// given matches. Matches the team did not play in are skipped regardless of
// how the caller pre-filtered the list.
func ComputeRecord(matches []match.Match, teamID int64) TeamRecord {
	rec := TeamRecord{TeamID: teamID}
	for _, m := range matches {
		if !m.Involves(teamID) {
			continue
		}

		score := ParseScore(m.FinalScore)
		own, opp := score.Home, score.Away
		if m.AwayTeamID == teamID && m.HomeTeamID != teamID {
			own, opp = score.Away, score.Home
		}

		rec.Played++
		rec.GoalsFor += own
		rec.GoalsAgainst += opp
		switch {
		case own > opp:
			rec.Wins++
		case own == opp:
			rec.Draws++
		default:
			rec.Losses++
		}
	}

	return rec
}
