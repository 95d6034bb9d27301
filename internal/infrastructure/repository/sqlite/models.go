package sqlite

import (
	"database/sql"

	"github.com/riskibarqy/team-editor/internal/domain/league"
	"github.com/riskibarqy/team-editor/internal/domain/record"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

const (
	tableTeams  = "Teams"
	tableStaff  = "Staff"
	tableLeague = "League"
)

var teamColumns = []string{
	team.FieldID,
	team.FieldName,
	team.FieldWealth,
	team.FieldFoundYear,
	team.FieldLocation,
	team.FieldSupporterCount,
	team.FieldStadiumName,
	team.FieldNickname,
	team.FieldLeague,
}

var staffColumns = []string{"ID", "Name", "AbilityJSON", "Fame", "EmployedTeamID"}

var leagueColumns = []string{"ID", "LeagueName"}

// Ids are scanned as any: game files mix INTEGER and TEXT id columns.
type teamTableModel struct {
	ID             any            `db:"ID"`
	Name           sql.NullString `db:"TeamName"`
	Wealth         record.Number  `db:"TeamWealth"`
	FoundYear      record.Number  `db:"TeamFoundYear"`
	Location       sql.NullString `db:"TeamLocation"`
	SupporterCount record.Number  `db:"SupporterCount"`
	StadiumName    sql.NullString `db:"StadiumName"`
	Nickname       sql.NullString `db:"Nickname"`
	LeagueID       any            `db:"BelongingLeague"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:             record.NormalizeID(m.ID),
		Key:            m.ID,
		Name:           m.Name.String,
		Wealth:         m.Wealth,
		FoundYear:      m.FoundYear,
		Location:       m.Location.String,
		SupporterCount: m.SupporterCount,
		StadiumName:    m.StadiumName.String,
		Nickname:       m.Nickname.String,
		LeagueID:       record.NormalizeID(m.LeagueID),
	}
}

type staffTableModel struct {
	ID             any            `db:"ID"`
	Name           sql.NullString `db:"Name"`
	AbilityJSON    sql.NullString `db:"AbilityJSON"`
	Fame           record.Number  `db:"Fame"`
	EmployedTeamID any            `db:"EmployedTeamID"`
}

func (m staffTableModel) toDomain() staff.Staff {
	return staff.Staff{
		ID:             record.NormalizeID(m.ID),
		Key:            m.ID,
		Name:           m.Name.String,
		AbilityJSON:    m.AbilityJSON.String,
		Fame:           m.Fame,
		EmployedTeamID: m.EmployedTeamID,
	}
}

type leagueTableModel struct {
	ID   any            `db:"ID"`
	Name sql.NullString `db:"LeagueName"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:   record.NormalizeID(m.ID),
		Name: m.Name.String,
	}
}

// Insert models used by the demo seeder.
type leagueInsertModel struct {
	ID   int64  `db:"ID"`
	Name string `db:"LeagueName"`
}

type teamInsertModel struct {
	ID             int64         `db:"ID"`
	Name           string        `db:"TeamName"`
	Wealth         record.Number `db:"TeamWealth"`
	FoundYear      int64         `db:"TeamFoundYear"`
	Location       string        `db:"TeamLocation"`
	SupporterCount int64         `db:"SupporterCount"`
	StadiumName    string        `db:"StadiumName"`
	Nickname       string        `db:"Nickname"`
	LeagueID       int64         `db:"BelongingLeague"`
}

type staffInsertModel struct {
	ID             int64  `db:"ID"`
	Name           string `db:"Name"`
	AbilityJSON    string `db:"AbilityJSON"`
	Fame           int64  `db:"Fame"`
	EmployedTeamID any    `db:"EmployedTeamID"`
}
