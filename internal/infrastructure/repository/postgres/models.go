package postgres

import (
	"database/sql"
	"time"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
)

type teamTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{ID: m.ID, Name: m.Name}
}

// matchTableModel keeps the final score as raw text so unparseable upstream
// values survive a round trip; the stats engine decides what they mean.
type matchTableModel struct {
	ID             int64        `db:"id"`
	HomeTeamID     int64        `db:"home_team_id"`
	AwayTeamID     int64        `db:"away_team_id"`
	FinalScore     string       `db:"final_score"`
	FirstHalfScore string       `db:"first_half_score"`
	MatchDate      sql.NullTime `db:"match_date"`
	League         string       `db:"league"`
	Country        string       `db:"country"`
	Season         string       `db:"season"`
}

func (m matchTableModel) toDomain() match.Match {
	matchDate := time.Time{}
	if m.MatchDate.Valid {
		matchDate = m.MatchDate.Time.UTC()
	}

	return match.Match{
		ID:             m.ID,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		FinalScore:     m.FinalScore,
		FirstHalfScore: m.FirstHalfScore,
		MatchDate:      matchDate,
		League:         m.League,
		Country:        m.Country,
		Season:         m.Season,
	}
}

func matchToModel(m match.Match) matchTableModel {
	matchDate := sql.NullTime{}
	if m.HasDate() {
		matchDate = sql.NullTime{Time: m.MatchDate.UTC(), Valid: true}
	}

	return matchTableModel{
		ID:             m.ID,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		FinalScore:     m.FinalScore,
		FirstHalfScore: m.FirstHalfScore,
		MatchDate:      matchDate,
		League:         m.League,
		Country:        m.Country,
		Season:         m.Season,
	}
}
