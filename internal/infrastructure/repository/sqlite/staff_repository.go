package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	qb "github.com/riskibarqy/team-editor/internal/platform/querybuilder"
)

type StaffRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewStaffRepository(db *sqlx.DB, logger *logging.Logger) *StaffRepository {
	return &StaffRepository{db: db, logger: logger}
}

func (r *StaffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	query, args, err := qb.Select(staffColumns...).From(tableStaff).ToSQL()
	if err != nil {
		return nil, readError(err, "build select staff query")
	}
	r.logger.DebugContext(ctx, "query", "sql", formatQueryForLog(query))

	var rows []staffTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, readError(err, "select staff")
	}

	out := make([]staff.Staff, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *StaffRepository) Update(ctx context.Context, input staff.Update) error {
	query, args, err := qb.Update(tableStaff).
		Set("Name", input.Name).
		Set("Fame", input.Fame).
		Set("AbilityJSON", input.AbilityJSON).
		Where(qb.Eq("ID", bindKey(input.Key, input.ID))).
		ToSQL()
	if err != nil {
		return storageError(err, "build update staff query")
	}
	r.logger.DebugContext(ctx, "exec", "sql", formatQueryForLog(query), "staff_id", input.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError(err, "update staff %s", input.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageError(err, "update staff %s rows affected", input.ID)
	}
	if affected == 0 {
		return fmt.Errorf("%w: staff %s", apperr.ErrNotFound, input.ID)
	}

	return nil
}
