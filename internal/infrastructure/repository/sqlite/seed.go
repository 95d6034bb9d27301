package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-editor/internal/domain/record"
	"github.com/riskibarqy/team-editor/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/team-editor/internal/platform/querybuilder"
)

func seedDemo(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insert := func(table string, model any, id string) error {
		query, args, err := qb.InsertModel(table, model)
		if err != nil {
			return storageError(err, "build seed %s %s query", table, id)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return storageError(err, "seed %s %s", table, id)
		}
		return nil
	}

	for _, l := range memory.SeedLeagues() {
		if err := insert(tableLeague, leagueInsertModel{
			ID:   idInt(l.ID),
			Name: l.Name,
		}, l.ID); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := insert(tableTeams, teamInsertModel{
			ID:             idInt(t.ID),
			Name:           t.Name,
			Wealth:         t.Wealth,
			FoundYear:      t.FoundYear.Int64(),
			Location:       t.Location,
			SupporterCount: t.SupporterCount.Int64(),
			StadiumName:    t.StadiumName,
			Nickname:       t.Nickname,
			LeagueID:       idInt(t.LeagueID),
		}, t.ID); err != nil {
			return err
		}
	}

	for _, s := range memory.SeedStaff() {
		if err := insert(tableStaff, staffInsertModel{
			ID:             idInt(s.ID),
			Name:           s.Name,
			AbilityJSON:    s.AbilityJSON,
			Fame:           s.Fame.Int64(),
			EmployedTeamID: s.EmployedTeamID,
		}, s.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError(err, "commit seed tx")
	}
	return nil
}

func idInt(id string) int64 {
	n, err := record.ParseNumber(id)
	if err != nil {
		return 0
	}
	return n.Int64()
}
