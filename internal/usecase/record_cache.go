package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/team-editor/internal/domain/record"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

// RecordCache holds the last snapshot read from storage. Snapshots are
// replaced wholesale; a failed refresh keeps the previous one.
type RecordCache struct {
	teams []team.Team
	staff []staff.Staff
}

func NewRecordCache() *RecordCache {
	return &RecordCache{}
}

func (c *RecordCache) RefreshTeams(ctx context.Context, repo team.Repository) error {
	items, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	c.teams = items
	return nil
}

func (c *RecordCache) RefreshStaff(ctx context.Context, repo staff.Repository) error {
	items, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load staff: %w", err)
	}
	c.staff = items
	return nil
}

func (c *RecordCache) Teams() []team.Team {
	return append([]team.Team(nil), c.teams...)
}

func (c *RecordCache) Team(id any) (team.Team, bool) {
	key := record.NormalizeID(id)
	for _, item := range c.teams {
		if item.ID == key {
			return item, true
		}
	}
	return team.Team{}, false
}

func (c *RecordCache) StaffMember(id any) (staff.Staff, bool) {
	key := record.NormalizeID(id)
	for _, item := range c.staff {
		if item.ID == key {
			return item, true
		}
	}
	return staff.Staff{}, false
}

// StaffFor returns the cached staff employed by teamID, in cache order.
// Both ids are compared as text, so 1, int64(1) and "1" are the same team.
func (c *RecordCache) StaffFor(teamID any) []staff.Staff {
	out := make([]staff.Staff, 0)
	for _, item := range c.staff {
		if item.EmployedBy(teamID) {
			out = append(out, item)
		}
	}
	return out
}
