package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/team"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	qb "github.com/riskibarqy/team-editor/internal/platform/querybuilder"
)

type TeamRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewTeamRepository(db *sqlx.DB, logger *logging.Logger) *TeamRepository {
	return &TeamRepository{db: db, logger: logger}
}

// List returns every team in storage order.
func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From(tableTeams).ToSQL()
	if err != nil {
		return nil, readError(err, "build select teams query")
	}
	r.logger.DebugContext(ctx, "query", "sql", formatQueryForLog(query))

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, readError(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// Update writes every editable field of item in a single statement.
func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrValidation, err)
	}

	query, args, err := qb.Update(tableTeams).
		Set(team.FieldName, item.Name).
		Set(team.FieldWealth, item.Wealth).
		Set(team.FieldFoundYear, item.FoundYear).
		Set(team.FieldLocation, item.Location).
		Set(team.FieldSupporterCount, item.SupporterCount).
		Set(team.FieldStadiumName, item.StadiumName).
		Set(team.FieldNickname, item.Nickname).
		Where(qb.Eq(team.FieldID, bindKey(item.Key, item.ID))).
		ToSQL()
	if err != nil {
		return storageError(err, "build update team query")
	}
	r.logger.DebugContext(ctx, "exec", "sql", formatQueryForLog(query), "team_id", item.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError(err, "update team %s", item.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageError(err, "update team %s rows affected", item.ID)
	}
	if affected == 0 {
		return fmt.Errorf("%w: team %s", apperr.ErrNotFound, item.ID)
	}

	return nil
}
