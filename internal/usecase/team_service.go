package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/platform/cache"
)

// TeamService serves the team directory.
type TeamService struct {
	teamRepo team.Repository
	cache    *cache.Store
}

func NewTeamService(teamRepo team.Repository, cacheStore *cache.Store) *TeamService {
	return &TeamService{teamRepo: teamRepo, cache: cacheStore}
}

// List returns every known team ordered by id.
func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	value, err := s.load(ctx, viewKey("teams"), func(ctx context.Context) (any, error) {
		teams, err := s.teamRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
		sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
		return teams, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]team.Team), nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	if teamID < 1 {
		return team.Team{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	found, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team %d: %w", teamID, err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}

	return found, nil
}

// Search returns the teams whose name contains the query, case-insensitively,
// ordered by id. An empty query behaves like List.
func (s *TeamService) Search(ctx context.Context, query string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Search")
	defer span.End()

	teams, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return teams, nil
	}

	out := make([]team.Team, 0, len(teams))
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			out = append(out, t)
		}
	}

	return out, nil
}

func (s *TeamService) load(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}
