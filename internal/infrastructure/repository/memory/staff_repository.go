package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
)

type StaffRepository struct {
	mu     sync.RWMutex
	items  map[string]staff.Staff
	orders []string

	updates []staff.Update
}

func NewStaffRepository(members []staff.Staff) *StaffRepository {
	items := make(map[string]staff.Staff, len(members))
	orders := make([]string, 0, len(members))

	for _, s := range members {
		items[s.ID] = s
		orders = append(orders, s.ID)
	}

	return &StaffRepository{
		items:  items,
		orders: orders,
	}
}

func (r *StaffRepository) List(_ context.Context) ([]staff.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Staff, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *StaffRepository) Update(_ context.Context, input staff.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[input.ID]
	if !ok {
		return fmt.Errorf("%w: staff %s", apperr.ErrNotFound, input.ID)
	}

	current.Name = input.Name
	current.Fame = input.Fame
	current.AbilityJSON = input.AbilityJSON
	r.items[input.ID] = current
	r.updates = append(r.updates, input)

	return nil
}

func (r *StaffRepository) Updates() []staff.Update {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]staff.Update(nil), r.updates...)
}
