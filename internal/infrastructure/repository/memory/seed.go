package memory

import (
	"github.com/riskibarqy/team-editor/internal/domain/league"
	"github.com/riskibarqy/team-editor/internal/domain/record"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

const (
	LeagueIDLiga1         = "1"
	LeagueIDPremierLeague = "2"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDLiga1, Name: "Liga 1 Indonesia"},
		{ID: LeagueIDPremierLeague, Name: "Premier League"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID: "1", Name: "Persija Jakarta", Wealth: record.Int(1200), FoundYear: record.Int(1928),
			Location: "Jakarta", SupporterCount: record.Int(95000), StadiumName: "Jakarta International Stadium",
			Nickname: "Macan Kemayoran", LeagueID: LeagueIDLiga1,
		},
		{
			ID: "2", Name: "Persib Bandung", Wealth: record.Decimal(1350.5), FoundYear: record.Int(1933),
			Location: "Bandung", SupporterCount: record.Int(110000), StadiumName: "Gelora Bandung Lautan Api",
			Nickname: "Maung Bandung", LeagueID: LeagueIDLiga1,
		},
		{
			ID: "3", Name: "Arsenal", Wealth: record.Int(9800), FoundYear: record.Int(1886),
			Location: "London", SupporterCount: record.Int(600000), StadiumName: "Emirates Stadium",
			Nickname: "The Gunners", LeagueID: LeagueIDPremierLeague,
		},
		{
			ID: "4", Name: "Liverpool", Wealth: record.Int(10400), FoundYear: record.Int(1892),
			Location: "Liverpool", SupporterCount: record.Int(720000), StadiumName: "Anfield",
			Nickname: "The Reds", LeagueID: LeagueIDPremierLeague,
		},
		{
			ID: "5", Name: "Free Agents XI", Wealth: record.Int(0), FoundYear: record.Int(2024),
			Location: "", SupporterCount: record.Int(12), StadiumName: "",
			Nickname: "", LeagueID: "99",
		},
	}
}

// SeedStaff mixes integer and text employer ids the way real game files do.
func SeedStaff() []staff.Staff {
	return []staff.Staff{
		{ID: "1", Name: "Thomas Doll", AbilityJSON: `{"rawAbility":142,"potential":150}`, Fame: record.Int(61), EmployedTeamID: int64(1)},
		{ID: "2", Name: "Bojan Hodak", AbilityJSON: `{"rawAbility":138}`, Fame: record.Int(58), EmployedTeamID: "2"},
		{ID: "3", Name: "Mikel Arteta", AbilityJSON: `{"rawAbility":171,"potential":180}`, Fame: record.Int(88), EmployedTeamID: int64(3)},
		{ID: "4", Name: "Arne Slot", AbilityJSON: `{"rawAbility":169}`, Fame: record.Int(84), EmployedTeamID: int64(4)},
		{ID: "5", Name: "Pep Lijnders", AbilityJSON: `not-json`, Fame: record.Int(40), EmployedTeamID: "4"},
		{ID: "6", Name: "Unattached Scout", AbilityJSON: `{"rawAbility":90}`, Fame: record.Int(5), EmployedTeamID: nil},
	}
}
