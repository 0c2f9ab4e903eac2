package httpapi

import (
	"fmt"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/stats"
	"github.com/delilt/football-dashboard/internal/usecase"
)

const dateLayout = "2006-01-02"

type teamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toTeamDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name}
}

func toTeamDTOs(teams []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamDTO(t))
	}
	return out
}

// matchDTO renders an unknown date as an empty string rather than a zero
// timestamp the frontend would mistake for the year 1.
type matchDTO struct {
	ID             int64  `json:"id"`
	HomeTeamID     int64  `json:"home_team_id"`
	AwayTeamID     int64  `json:"away_team_id"`
	FinalScore     string `json:"final_score"`
	FirstHalfScore string `json:"first_half_score,omitempty"`
	MatchDate      string `json:"match_date,omitempty"`
	League         string `json:"league"`
	Country        string `json:"country,omitempty"`
	Season         string `json:"season,omitempty"`
}

func toMatchDTO(m match.Match) matchDTO {
	matchDate := ""
	if m.HasDate() {
		matchDate = m.MatchDate.Format(dateLayout)
	}

	return matchDTO{
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

func toMatchDTOs(matches []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchDTO(m))
	}
	return out
}

type recordDTO struct {
	TeamID       int64 `json:"team_id"`
	Played       int   `json:"played"`
	Wins         int   `json:"wins"`
	Draws        int   `json:"draws"`
	Losses       int   `json:"losses"`
	GoalsFor     int   `json:"goals_for"`
	GoalsAgainst int   `json:"goals_against"`
}

func toRecordDTO(r stats.TeamRecord) recordDTO {
	return recordDTO{
		TeamID:       r.TeamID,
		Played:       r.Played,
		Wins:         r.Wins,
		Draws:        r.Draws,
		Losses:       r.Losses,
		GoalsFor:     r.GoalsFor,
		GoalsAgainst: r.GoalsAgainst,
	}
}

type teamRowDTO struct {
	Team string `json:"team"`
	recordDTO
}

func toTeamRowDTOs(rows []stats.TeamRow) []teamRowDTO {
	out := make([]teamRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamRowDTO{Team: row.Team, recordDTO: toRecordDTO(row.TeamRecord)})
	}
	return out
}

type monthGoalsDTO struct {
	Month string `json:"month"`
	Goals int    `json:"goals"`
}

func toMonthGoalsDTOs(trend []stats.MonthGoals) []monthGoalsDTO {
	out := make([]monthGoalsDTO, 0, len(trend))
	for _, bucket := range trend {
		out = append(out, monthGoalsDTO{
			Month: fmt.Sprintf("%04d-%02d", bucket.Year, int(bucket.Month)),
			Goals: bucket.Goals,
		})
	}
	return out
}

type leagueCountDTO struct {
	League  string `json:"league"`
	Matches int    `json:"matches"`
}

func toLeagueCountDTOs(counts []stats.LeagueCount) []leagueCountDTO {
	out := make([]leagueCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, leagueCountDTO{League: c.League, Matches: c.Matches})
	}
	return out
}

type teamGoalsDTO struct {
	TeamID int64  `json:"team_id"`
	Team   string `json:"team"`
	Goals  int    `json:"goals"`
}

func toTeamGoalsDTOs(rows []stats.TeamGoals) []teamGoalsDTO {
	out := make([]teamGoalsDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamGoalsDTO{TeamID: row.TeamID, Team: row.Team, Goals: row.Goals})
	}
	return out
}

type matchGoalsDTO struct {
	Match      matchDTO `json:"match"`
	TotalGoals int      `json:"total_goals"`
}

func toMatchGoalsDTOs(rows []stats.MatchGoals) []matchGoalsDTO {
	out := make([]matchGoalsDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchGoalsDTO{Match: toMatchDTO(row.Match), TotalGoals: row.TotalGoals})
	}
	return out
}

type teamAverageDTO struct {
	TeamID  int64   `json:"team_id"`
	Team    string  `json:"team"`
	Played  int     `json:"played"`
	Goals   int     `json:"goals"`
	Average float64 `json:"average"`
}

func toTeamAverageDTOs(rows []stats.TeamAverage) []teamAverageDTO {
	out := make([]teamAverageDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamAverageDTO{
			TeamID:  row.TeamID,
			Team:    row.Team,
			Played:  row.Played,
			Goals:   row.Goals,
			Average: row.Average,
		})
	}
	return out
}

type dateCountDTO struct {
	Date    string `json:"date"`
	Matches int    `json:"matches"`
}

func toDateCountDTOs(counts []stats.DateCount) []dateCountDTO {
	out := make([]dateCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dateCountDTO{Date: c.Date.Format(dateLayout), Matches: c.Matches})
	}
	return out
}

type seriesPointDTO struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func toSeriesPointDTOs(points []usecase.SeriesPoint) []seriesPointDTO {
	out := make([]seriesPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, seriesPointDTO{Label: p.Label, Value: p.Value})
	}
	return out
}

type dashboardDTO struct {
	Team            teamDTO          `json:"team"`
	Record          recordDTO        `json:"record"`
	ResultBreakdown []seriesPointDTO `json:"result_breakdown"`
	GoalsBreakdown  []seriesPointDTO `json:"goals_breakdown"`
	MonthlyTrend    []monthGoalsDTO  `json:"monthly_trend"`
}

func toDashboardDTO(d usecase.Dashboard) dashboardDTO {
	return dashboardDTO{
		Team:            toTeamDTO(d.Team),
		Record:          toRecordDTO(d.Record),
		ResultBreakdown: toSeriesPointDTOs(d.ResultBreakdown),
		GoalsBreakdown:  toSeriesPointDTOs(d.GoalsBreakdown),
		MonthlyTrend:    toMonthGoalsDTOs(d.MonthlyTrend),
	}
}

type syncResultDTO struct {
	RunID           string `json:"run_id"`
	Teams           int    `json:"teams"`
	Matches         int    `json:"matches"`
	DroppedRecords  int    `json:"dropped_records"`
	DefaultedScores int    `json:"defaulted_scores"`
	UnknownDates    int    `json:"unknown_dates"`
	WarmedTeams     int    `json:"warmed_teams"`
}

func toSyncResultDTO(r usecase.SyncResult) syncResultDTO {
	return syncResultDTO{
		RunID:           r.RunID,
		Teams:           r.Teams,
		Matches:         r.Matches,
		DroppedRecords:  r.DroppedRecords,
		DefaultedScores: r.DefaultedScores,
		UnknownDates:    r.UnknownDates,
		WarmedTeams:     r.WarmedTeams,
	}
}
