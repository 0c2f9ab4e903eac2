package memory

import (
	"context"
	"sync"

	"github.com/delilt/football-dashboard/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{}
	r.replace(matches)
	return r
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, len(r.items))
	copy(out, r.items)

	return out, nil
}

func (r *MatchRepository) ReplaceAll(_ context.Context, matches []match.Match) error {
	r.replace(matches)
	return nil
}

func (r *MatchRepository) replace(matches []match.Match) {
	items := make([]match.Match, len(matches))
	copy(items, matches)

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
}
