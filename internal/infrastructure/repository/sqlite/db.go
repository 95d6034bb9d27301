package sqlite

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/league"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	qb "github.com/riskibarqy/team-editor/internal/platform/querybuilder"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

//go:embed schema.sql
var schemaSQL string

var requiredTables = []struct {
	name    string
	columns []string
}{
	{name: tableTeams, columns: teamColumns},
	{name: tableStaff, columns: staffColumns},
	{name: tableLeague, columns: leagueColumns},
}

// DB is one open game database. It owns the single connection and hands out
// repositories bound to it.
type DB struct {
	db     *sqlx.DB
	path   string
	logger *logging.Logger

	closeOnce sync.Once
	closeErr  error

	leagues *LeagueRepository
	teams   *TeamRepository
	staff   *StaffRepository
}

// Open connects to an existing database file and checks that the Teams,
// Staff and League tables carry the expected columns.
func Open(ctx context.Context, path string, logger *logging.Logger) (*DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: database path is required", apperr.ErrConnection)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, connectionError(err, "stat database %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", apperr.ErrConnection, path)
	}

	conn, err := openConn(path)
	if err != nil {
		return nil, connectionError(err, "open database %s", path)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, connectionError(err, "ping database %s", path)
	}

	if err := verifySchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, connectionError(err, "database %s", path)
	}

	logger.DebugContext(ctx, "database opened", "path", path)

	db := &DB{
		db:     conn,
		path:   path,
		logger: logger,
	}
	db.leagues = NewLeagueRepository(conn, logger)
	db.teams = NewTeamRepository(conn, logger)
	db.staff = NewStaffRepository(conn, logger)

	return db, nil
}

func openConn(path string) (*sqlx.DB, error) {
	conn, err := otelsqlx.Open(driverName, path, otelsql.WithDBSystem("sqlite"))
	if err != nil {
		return nil, err
	}

	// SQLite serialises writers anyway; one connection keeps the session's
	// reads consistent with its own writes.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	return conn, nil
}

func verifySchema(ctx context.Context, conn *sqlx.DB) error {
	for _, table := range requiredTables {
		query, _, err := qb.Select(table.columns...).From(table.name).Limit(1).ToSQL()
		if err != nil {
			return fmt.Errorf("build schema check for %s: %w", table.name, err)
		}

		stmt, err := conn.PreparexContext(ctx, query)
		if err != nil {
			return fmt.Errorf("table %s: %w", table.name, err)
		}
		_ = stmt.Close()
	}
	return nil
}

func (d *DB) Path() string {
	return d.path
}

func (d *DB) Leagues() league.Repository {
	return d.leagues
}

func (d *DB) Teams() team.Repository {
	return d.teams
}

func (d *DB) Staff() staff.Repository {
	return d.staff
}

// Close releases the connection. Calling it more than once is safe.
func (d *DB) Close() error {
	d.closeOnce.Do(func() {
		if err := d.db.Close(); err != nil {
			d.closeErr = storageError(err, "close database %s", d.path)
			return
		}
		d.logger.Debug("database closed", "path", d.path)
	})
	return d.closeErr
}

// CreateDemo writes a new database file at path holding the game schema and a
// handful of sample leagues, teams and staff. It refuses to touch an existing
// file.
func CreateDemo(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: database path is required", apperr.ErrStorage)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", apperr.ErrStorage, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return storageError(err, "stat %s", path)
	}

	conn, err := openConn(path)
	if err != nil {
		return storageError(err, "create database %s", path)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		return storageError(err, "apply schema")
	}

	return seedDemo(ctx, conn)
}
