package memory

import (
	"context"
	"sync"

	"github.com/delilt/football-dashboard/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[int64]team.Team
	orders []int64
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{}
	r.replace(teams)
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) ReplaceAll(_ context.Context, teams []team.Team) error {
	r.replace(teams)
	return nil
}

func (r *TeamRepository) replace(teams []team.Team) {
	items := make(map[int64]team.Team, len(teams))
	orders := make([]int64, 0, len(teams))
	for _, t := range teams {
		if _, exists := items[t.ID]; !exists {
			orders = append(orders, t.ID)
		}
		items[t.ID] = t
	}

	r.mu.Lock()
	r.items = items
	r.orders = orders
	r.mu.Unlock()
}
