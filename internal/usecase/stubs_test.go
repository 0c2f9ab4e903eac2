package usecase

import (
	"context"
	"time"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
)

type stubTeamRepository struct {
	teams     []team.Team
	listErr   error
	listCalls int
	replaced  []team.Team
}

func (r *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]team.Team, len(r.teams))
	copy(out, r.teams)
	return out, nil
}

func (r *stubTeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	for _, t := range r.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *stubTeamRepository) ReplaceAll(_ context.Context, teams []team.Team) error {
	r.replaced = teams
	r.teams = teams
	return nil
}

type stubMatchRepository struct {
	matches    []match.Match
	listErr    error
	listCalls  int
	replaceErr error
	replaced   []match.Match
}

func (r *stubMatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]match.Match, len(r.matches))
	copy(out, r.matches)
	return out, nil
}

func (r *stubMatchRepository) ReplaceAll(_ context.Context, matches []match.Match) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.replaced = matches
	r.matches = matches
	return nil
}

type stubFetcher struct {
	snapshot Snapshot
	err      error
	calls    int
}

func (f *stubFetcher) FetchSnapshot(_ context.Context) (Snapshot, error) {
	f.calls++
	if f.err != nil {
		return Snapshot{}, f.err
	}
	return f.snapshot, nil
}

func fixtureTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Galatasaray"},
		{ID: 2, Name: "Fenerbahçe"},
		{ID: 3, Name: "Beşiktaş"},
	}
}

func fixtureDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureMatches() []match.Match {
	return []match.Match{
		{ID: 11, HomeTeamID: 1, AwayTeamID: 2, FinalScore: "2-1", MatchDate: fixtureDay(2025, time.August, 10), League: "Süper Lig"},
		{ID: 12, HomeTeamID: 2, AwayTeamID: 3, FinalScore: "0-0", MatchDate: fixtureDay(2025, time.August, 24), League: "Süper Lig"},
		{ID: 13, HomeTeamID: 3, AwayTeamID: 1, FinalScore: "1-3", MatchDate: fixtureDay(2025, time.September, 14), League: "Süper Lig"},
		{ID: 14, HomeTeamID: 1, AwayTeamID: 3, FinalScore: "1-1", MatchDate: fixtureDay(2025, time.October, 5), League: "Türkiye Kupası"},
	}
}
