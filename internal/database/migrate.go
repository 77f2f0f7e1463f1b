package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"interview-prep/internal/logger"
	"interview-prep/internal/repository"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const createVersionTable = `CREATE TABLE schema_migrations (
    version    NUMBER(19)    NOT NULL,
    identifier VARCHAR2(255) NOT NULL,
    dirty      NUMBER(1)     DEFAULT 0 NOT NULL,
    applied_at TIMESTAMP     DEFAULT SYSTIMESTAMP NOT NULL,
    CONSTRAINT pk_schema_migrations PRIMARY KEY (version)
)`

// ORA-00955: name is already used by an existing object
const oraNameInUse = "ORA-00955"

// ErrDirty is returned while a migration is marked as partially applied.
// Oracle commits DDL implicitly, so a failed migration cannot be rolled back
// and needs manual repair followed by Force.
type ErrDirty struct {
	Version uint
}

func (e ErrDirty) Error() string {
	return fmt.Sprintf("database is dirty at migration %d; repair the schema and force a version", e.Version)
}

// Migration is one versioned SQL file pair.
type Migration struct {
	Version    uint
	Identifier string
	Up         []string
	Down       []string
}

// LoadMigrations reads the embedded migrations in version order.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open migrations source: %w", err)
	}
	defer src.Close()

	var migrations []Migration
	version, err := src.First()
	for err == nil {
		m, readErr := readMigration(src, version)
		if readErr != nil {
			return nil, readErr
		}
		migrations = append(migrations, m)
		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not enumerate migrations: %w", err)
	}
	return migrations, nil
}

func readMigration(src source.Driver, version uint) (Migration, error) {
	up, identifier, err := src.ReadUp(version)
	if err != nil {
		return Migration{}, fmt.Errorf("could not read up migration %d: %w", version, err)
	}
	upSQL, err := readAll(up)
	if err != nil {
		return Migration{}, fmt.Errorf("could not read up migration %d: %w", version, err)
	}

	m := Migration{Version: version, Identifier: identifier, Up: SplitStatements(upSQL)}

	down, _, err := src.ReadDown(version)
	if err == nil {
		downSQL, err := readAll(down)
		if err != nil {
			return Migration{}, fmt.Errorf("could not read down migration %d: %w", version, err)
		}
		m.Down = SplitStatements(downSQL)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Migration{}, fmt.Errorf("could not read down migration %d: %w", version, err)
	}
	return m, nil
}

func readAll(rc io.ReadCloser) (string, error) {
	defer rc.Close()
	b, err := io.ReadAll(rc)
	return string(b), err
}

// SplitStatements splits a migration file on ';'. Oracle drivers execute one
// statement per call and reject a trailing semicolon.
func SplitStatements(sql string) []string {
	var stmts []string
	for _, s := range strings.Split(sql, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// RunMigrations applies every embedded migration not yet recorded in
// schema_migrations and returns how many were applied.
func RunMigrations(ctx context.Context, db *sqlx.DB) (int, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return 0, err
	}
	return applyMigrations(ctx, db, migrations)
}

func applyMigrations(ctx context.Context, db *sqlx.DB, migrations []Migration) (int, error) {
	l := logger.Get()
	if err := ensureVersionTable(ctx, db); err != nil {
		return 0, err
	}

	state, err := readVersionState(ctx, db)
	if err != nil {
		return 0, err
	}
	if state.dirty != nil {
		return 0, ErrDirty{Version: *state.dirty}
	}

	count := 0
	for _, m := range migrations {
		if state.applied[m.Version] {
			continue
		}
		// 실패 시 dirty 행이 남아 다음 실행을 막는다
		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, identifier, dirty) VALUES (:1, :2, 1)`,
			m.Version, m.Identifier); err != nil {
			return count, fmt.Errorf("could not mark migration %d (%s) dirty: %w", m.Version, m.Identifier, err)
		}
		if err := execStatements(ctx, db, m.Up); err != nil {
			return count, fmt.Errorf("could not execute migration %d (%s): %w", m.Version, m.Identifier, err)
		}
		if _, err := db.ExecContext(ctx, `UPDATE schema_migrations SET dirty = 0 WHERE version = :1`, m.Version); err != nil {
			return count, fmt.Errorf("could not mark migration %d (%s) clean: %w", m.Version, m.Identifier, err)
		}
		l.Info("Executed migration", zap.Uint("version", m.Version), zap.String("identifier", m.Identifier))
		count++
	}

	l.Info("Migrations completed successfully", zap.Int("applied", count))
	return count, nil
}

func execStatements(ctx context.Context, db *sqlx.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// RollbackLast reverts the most recently applied migration. It returns
// false when nothing has been applied.
func RollbackLast(ctx context.Context, db *sqlx.DB) (bool, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return false, err
	}
	return rollbackLast(ctx, db, migrations)
}

func rollbackLast(ctx context.Context, db *sqlx.DB, migrations []Migration) (bool, error) {
	state, err := readVersionState(ctx, db)
	if err != nil {
		return false, err
	}
	if state.dirty != nil {
		return false, ErrDirty{Version: *state.dirty}
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		m := migrations[i]
		if !state.applied[m.Version] {
			continue
		}
		if _, err := db.ExecContext(ctx, `UPDATE schema_migrations SET dirty = 1 WHERE version = :1`, m.Version); err != nil {
			return false, fmt.Errorf("could not mark migration %d (%s) dirty: %w", m.Version, m.Identifier, err)
		}
		if err := execStatements(ctx, db, m.Down); err != nil {
			return false, fmt.Errorf("could not roll back migration %d (%s): %w", m.Version, m.Identifier, err)
		}
		if _, err := db.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = :1`, m.Version); err != nil {
			return false, fmt.Errorf("could not remove migration %d (%s): %w", m.Version, m.Identifier, err)
		}
		logger.Get().Info("Rolled back migration", zap.Uint("version", m.Version), zap.String("identifier", m.Identifier))
		return true, nil
	}
	return false, nil
}

// Force records version as the clean head of the schema: rows above it are
// removed and its own row, if any, is marked clean. It is the way out of
// ErrDirty once the schema has been repaired by hand.
func Force(ctx context.Context, db *sqlx.DB, version uint) error {
	tm := repository.NewTransactionManagerAdapter(db)
	err := tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := repository.GetExecutor(ctx, db)
		if _, err := exec.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version > :1`, version); err != nil {
			return err
		}
		_, err := exec.ExecContext(ctx, `UPDATE schema_migrations SET dirty = 0 WHERE version = :1`, version)
		return err
	})
	if err != nil {
		return fmt.Errorf("could not force migration version %d: %w", version, err)
	}
	logger.Get().Warn("Forced migration version", zap.Uint("version", version))
	return nil
}

func ensureVersionTable(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createVersionTable); err != nil {
		if strings.Contains(err.Error(), oraNameInUse) {
			return nil
		}
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

type versionRow struct {
	Version int64 `db:"VERSION"`
	Dirty   int64 `db:"DIRTY"`
}

type versionState struct {
	applied map[uint]bool
	dirty   *uint
}

func readVersionState(ctx context.Context, db *sqlx.DB) (versionState, error) {
	var rows []versionRow
	if err := db.SelectContext(ctx, &rows, `SELECT version, dirty FROM schema_migrations ORDER BY version`); err != nil {
		return versionState{}, fmt.Errorf("could not read schema_migrations: %w", err)
	}
	state := versionState{applied: make(map[uint]bool, len(rows))}
	for _, r := range rows {
		v := uint(r.Version)
		state.applied[v] = true
		if r.Dirty != 0 {
			state.dirty = &v
		}
	}
	return state, nil
}
