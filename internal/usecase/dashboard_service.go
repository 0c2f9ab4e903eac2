package usecase

import (
	"context"
	"fmt"

	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/stats"
)

// SeriesPoint is one labelled value in a chart series. The frontend renders
// these directly, so labels are display strings rather than enum codes.
type SeriesPoint struct {
	Label string
	Value float64
}

// Dashboard is everything the team dashboard page renders in one payload:
// the record, the pie and bar breakdowns derived from it, and the monthly
// goal trend.
type Dashboard struct {
	Team            team.Team
	Record          stats.TeamRecord
	ResultBreakdown []SeriesPoint
	GoalsBreakdown  []SeriesPoint
	MonthlyTrend    []stats.MonthGoals
}

// DashboardService assembles the per-team dashboard from the stats views.
type DashboardService struct {
	teamService  *TeamService
	statsService *StatsService
}

func NewDashboardService(teamService *TeamService, statsService *StatsService) *DashboardService {
	return &DashboardService{teamService: teamService, statsService: statsService}
}

// Get builds the dashboard for one team over the matches passing the filter.
// An unknown team id yields ErrNotFound.
func (s *DashboardService) Get(ctx context.Context, teamID int64, f stats.Filter) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	selected, err := s.teamService.GetByID(ctx, teamID)
	if err != nil {
		return Dashboard{}, err
	}

	record, err := s.statsService.TeamRecord(ctx, teamID, f)
	if err != nil {
		return Dashboard{}, fmt.Errorf("team record: %w", err)
	}

	trend, err := s.statsService.TeamTrend(ctx, teamID, f)
	if err != nil {
		return Dashboard{}, fmt.Errorf("team trend: %w", err)
	}

	return Dashboard{
		Team:   selected,
		Record: record,
		ResultBreakdown: []SeriesPoint{
			{Label: "Wins", Value: float64(record.Wins)},
			{Label: "Draws", Value: float64(record.Draws)},
			{Label: "Losses", Value: float64(record.Losses)},
		},
		GoalsBreakdown: []SeriesPoint{
			{Label: "Goals For", Value: float64(record.GoalsFor)},
			{Label: "Goals Against", Value: float64(record.GoalsAgainst)},
		},
		MonthlyTrend: trend,
	}, nil
}
