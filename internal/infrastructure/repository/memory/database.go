package memory

import (
	"sync"

	"github.com/riskibarqy/team-editor/internal/domain/league"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

// Database bundles the in-memory repositories behind the same accessors the
// SQLite gateway exposes.
type Database struct {
	LeagueRepo *LeagueRepository
	TeamRepo   *TeamRepository
	StaffRepo  *StaffRepository

	mu     sync.Mutex
	closes int
}

func NewDatabase(leagues []league.League, teams []team.Team, members []staff.Staff) *Database {
	return &Database{
		LeagueRepo: NewLeagueRepository(leagues),
		TeamRepo:   NewTeamRepository(teams),
		StaffRepo:  NewStaffRepository(members),
	}
}

// NewSeededDatabase returns a Database filled with the sample data set.
func NewSeededDatabase() *Database {
	return NewDatabase(SeedLeagues(), SeedTeams(), SeedStaff())
}

func (d *Database) Leagues() league.Repository {
	return d.LeagueRepo
}

func (d *Database) Teams() team.Repository {
	return d.TeamRepo
}

func (d *Database) Staff() staff.Repository {
	return d.StaffRepo
}

func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closes++
	return nil
}

// Closed reports whether Close has been called at least once.
func (d *Database) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closes > 0
}
