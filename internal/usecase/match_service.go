package usecase

import (
	"context"
	"fmt"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/stats"
)

// MatchListQuery narrows and orders the match list.
type MatchListQuery struct {
	Filter     stats.Filter
	SortByDate bool
}

// MatchService serves the match list with filtering and ordering applied.
type MatchService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
}

func NewMatchService(teamRepo team.Repository, matchRepo match.Repository) *MatchService {
	return &MatchService{teamRepo: teamRepo, matchRepo: matchRepo}
}

func (s *MatchService) List(ctx context.Context, query MatchListQuery) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	if query.Filter.TeamID < 0 {
		return nil, fmt.Errorf("%w: team id must not be negative", ErrInvalidInput)
	}
	if !query.Filter.DateFrom.IsZero() && !query.Filter.DateTo.IsZero() &&
		query.Filter.DateTo.Before(query.Filter.DateFrom) {
		return nil, fmt.Errorf("%w: date range is inverted", ErrInvalidInput)
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	// Team names are only needed when a name search is active.
	var teams []team.Team
	if query.Filter.Search != "" {
		teams, err = s.teamRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
	}

	filtered := stats.FilterMatches(matches, teams, query.Filter)
	if query.SortByDate {
		filtered = stats.SortByDateAscending(filtered)
	}

	return filtered, nil
}
