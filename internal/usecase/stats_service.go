package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/platform/cache"
	"github.com/delilt/football-dashboard/internal/stats"
)

// StatsService serves the derived statistics views. Whole-dataset views are
// cached until the next snapshot refresh invalidates them.
type StatsService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	cache     *cache.Store
}

func NewStatsService(teamRepo team.Repository, matchRepo match.Repository, cacheStore *cache.Store) *StatsService {
	return &StatsService{teamRepo: teamRepo, matchRepo: matchRepo, cache: cacheStore}
}

// TeamTable returns every team's full record, highest scoring first.
func (s *StatsService) TeamTable(ctx context.Context) ([]stats.TeamRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamTable")
	defer span.End()

	value, err := s.load(ctx, viewKey("team-table"), func(ctx context.Context) (any, error) {
		teams, matches, err := s.loadDataset(ctx)
		if err != nil {
			return nil, err
		}
		return stats.TeamTable(matches, teams), nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.TeamRow), nil
}

// WinLossTable is the team table reordered by wins, for the win/loss view.
func (s *StatsService) WinLossTable(ctx context.Context) ([]stats.TeamRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.WinLossTable")
	defer span.End()

	table, err := s.TeamTable(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]stats.TeamRow, len(table))
	copy(out, table)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out, nil
}

func (s *StatsService) LeagueMatchCounts(ctx context.Context) ([]stats.LeagueCount, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.LeagueMatchCounts")
	defer span.End()

	value, err := s.load(ctx, viewKey("league-counts"), func(ctx context.Context) (any, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return stats.AggregateByLeague(matches), nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.LeagueCount), nil
}

func (s *StatsService) AverageGoals(ctx context.Context) ([]stats.TeamAverage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AverageGoals")
	defer span.End()

	value, err := s.load(ctx, viewKey("average-goals"), func(ctx context.Context) (any, error) {
		teams, matches, err := s.loadDataset(ctx)
		if err != nil {
			return nil, err
		}
		return stats.AverageGoals(matches, teams), nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.TeamAverage), nil
}

func (s *StatsService) TopScorers(ctx context.Context, n int) ([]stats.TeamGoals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopScorers")
	defer span.End()

	if n < 1 {
		return nil, fmt.Errorf("%w: top scorer limit must be positive", ErrInvalidInput)
	}

	value, err := s.load(ctx, viewKeyN("top-scorers", n), func(ctx context.Context) (any, error) {
		teams, matches, err := s.loadDataset(ctx)
		if err != nil {
			return nil, err
		}
		return stats.TopScorers(matches, teams, n), nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.TeamGoals), nil
}

func (s *StatsService) TopScoringMatches(ctx context.Context, n int) ([]stats.MatchGoals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopScoringMatches")
	defer span.End()

	if n < 1 {
		return nil, fmt.Errorf("%w: match limit must be positive", ErrInvalidInput)
	}

	value, err := s.load(ctx, viewKeyN("top-matches", n), func(ctx context.Context) (any, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return stats.TopScoringMatches(matches, n), nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.MatchGoals), nil
}

func (s *StatsService) CountByDate(ctx context.Context) ([]stats.DateCount, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.CountByDate")
	defer span.End()

	value, err := s.load(ctx, viewKey("count-by-date"), func(ctx context.Context) (any, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return stats.CountByDate(matches), nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.DateCount), nil
}

// TeamRecord computes one team's win/draw/loss record over the matches that
// pass the filter. The unfiltered record is served from cache when warm.
func (s *StatsService) TeamRecord(ctx context.Context, teamID int64, f stats.Filter) (stats.TeamRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamRecord")
	defer span.End()

	if err := s.requireTeam(ctx, teamID); err != nil {
		return stats.TeamRecord{}, err
	}

	if f.IsZero() && s.cache != nil {
		value, err := s.cache.GetOrLoad(ctx, teamRecordKey(teamID), func(ctx context.Context) (any, error) {
			matches, err := s.matchRepo.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("list matches: %w", err)
			}
			return stats.ComputeRecord(matches, teamID), nil
		})
		if err != nil {
			return stats.TeamRecord{}, err
		}
		return value.(stats.TeamRecord), nil
	}

	matches, err := s.teamMatches(ctx, teamID, f)
	if err != nil {
		return stats.TeamRecord{}, err
	}

	return stats.ComputeRecord(matches, teamID), nil
}

// TeamTrend computes one team's month-by-month goal totals over the matches
// that pass the filter.
func (s *StatsService) TeamTrend(ctx context.Context, teamID int64, f stats.Filter) ([]stats.MonthGoals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamTrend")
	defer span.End()

	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	matches, err := s.teamMatches(ctx, teamID, f)
	if err != nil {
		return nil, err
	}

	return stats.MonthlyGoalTrend(matches, teamID), nil
}

func (s *StatsService) requireTeam(ctx context.Context, teamID int64) error {
	if teamID < 1 {
		return fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	_, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team %d: %w", teamID, err)
	}
	if !ok {
		return fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}

	return nil
}

func (s *StatsService) teamMatches(ctx context.Context, teamID int64, f stats.Filter) ([]match.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	// Search needs participant names, so it is the only dimension that
	// costs a team lookup here.
	var teams []team.Team
	if strings.TrimSpace(f.Search) != "" {
		teams, err = s.teamRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
	}

	f.TeamID = teamID
	return stats.FilterMatches(matches, teams, f), nil
}

func (s *StatsService) loadDataset(ctx context.Context) ([]team.Team, []match.Match, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list teams: %w", err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list matches: %w", err)
	}
	return teams, matches, nil
}

func (s *StatsService) load(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}
