package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string

	updates   []team.Team
	listCalls int
	updateErr error
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	orders := make([]string, 0, len(teams))

	for _, t := range teams {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listCalls++
	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}

	current, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("%w: team %s", apperr.ErrNotFound, item.ID)
	}

	// BelongingLeague is not part of the update statement.
	item.LeagueID = current.LeagueID
	r.items[item.ID] = item
	r.updates = append(r.updates, item)

	return nil
}

// Updates returns every team written so far, oldest first.
func (r *TeamRepository) Updates() []team.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]team.Team(nil), r.updates...)
}

func (r *TeamRepository) ListCalls() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listCalls
}

// FailUpdatesWith makes Update return err until called again with nil.
func (r *TeamRepository) FailUpdatesWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateErr = err
}
