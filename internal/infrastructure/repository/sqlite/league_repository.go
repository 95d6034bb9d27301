package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-editor/internal/domain/league"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	qb "github.com/riskibarqy/team-editor/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewLeagueRepository(db *sqlx.DB, logger *logging.Logger) *LeagueRepository {
	return &LeagueRepository{db: db, logger: logger}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select(leagueColumns...).From(tableLeague).ToSQL()
	if err != nil {
		return nil, readError(err, "build select leagues query")
	}
	r.logger.DebugContext(ctx, "query", "sql", formatQueryForLog(query))

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, readError(err, "select leagues")
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
