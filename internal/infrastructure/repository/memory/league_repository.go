package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/team-editor/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League

	listErr error
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	return &LeagueRepository{items: append([]league.League(nil), leagues...)}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	return append([]league.League(nil), r.items...), nil
}

// FailListWith makes List return err until called again with nil.
func (r *LeagueRepository) FailListWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listErr = err
}
