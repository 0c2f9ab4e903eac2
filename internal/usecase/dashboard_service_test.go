package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/delilt/football-dashboard/internal/stats"
)

func newDashboardFixture() *DashboardService {
	teamRepo := &stubTeamRepository{teams: fixtureTeams()}
	matchRepo := &stubMatchRepository{matches: fixtureMatches()}
	return NewDashboardService(
		NewTeamService(teamRepo, nil),
		NewStatsService(teamRepo, matchRepo, nil),
	)
}

func TestDashboardService_Get(t *testing.T) {
	t.Parallel()

	service := newDashboardFixture()

	got, err := service.Get(context.Background(), 1, stats.Filter{})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}

	if got.Team.Name != "Galatasaray" {
		t.Fatalf("unexpected team: %+v", got.Team)
	}
	if got.Record.Played != 3 || got.Record.Wins != 2 || got.Record.Draws != 1 {
		t.Fatalf("unexpected record: %+v", got.Record)
	}

	if len(got.ResultBreakdown) != 3 {
		t.Fatalf("expected 3 result slices, got %+v", got.ResultBreakdown)
	}
	if got.ResultBreakdown[0].Label != "Wins" || got.ResultBreakdown[0].Value != 2 {
		t.Fatalf("unexpected wins slice: %+v", got.ResultBreakdown[0])
	}
	if got.ResultBreakdown[2].Label != "Losses" || got.ResultBreakdown[2].Value != 0 {
		t.Fatalf("unexpected losses slice: %+v", got.ResultBreakdown[2])
	}

	if len(got.GoalsBreakdown) != 2 {
		t.Fatalf("expected 2 goal bars, got %+v", got.GoalsBreakdown)
	}
	if got.GoalsBreakdown[0].Value != 6 || got.GoalsBreakdown[1].Value != 3 {
		t.Fatalf("unexpected goal bars: %+v", got.GoalsBreakdown)
	}

	if len(got.MonthlyTrend) != 3 {
		t.Fatalf("expected 3 trend buckets, got %+v", got.MonthlyTrend)
	}
}

func TestDashboardService_GetHonorsFilter(t *testing.T) {
	t.Parallel()

	service := newDashboardFixture()

	got, err := service.Get(context.Background(), 1, stats.Filter{
		DateFrom: fixtureDay(2025, time.September, 1),
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Record.Played != 2 || got.Record.Wins != 1 || got.Record.Draws != 1 {
		t.Fatalf("expected only the September and October matches, got %+v", got.Record)
	}
}

func TestDashboardService_GetUnknownTeam(t *testing.T) {
	t.Parallel()

	service := newDashboardFixture()

	if _, err := service.Get(context.Background(), 999, stats.Filter{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
