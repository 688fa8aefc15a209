// Package migrate применяет встроенные SQL миграции.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	"github.com/m04kA/Truckify-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Truckify-BookingService/pkg/psqlbuilder"
)

var (
	ErrReadMigrations = errors.New("migrate: failed to read migrations")
	ErrApplyMigration = errors.New("migrate: failed to apply migration")
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type Logger interface {
	Info(format string, v ...interface{})
}

// TxManager транзакция на каждую миграцию
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type migration struct {
	version int
	name    string
	sql     string
}

// Migrator применяет миграции из files, записывая версии в schema_migrations
type Migrator struct {
	db        dbmetrics.DBExecutor
	txManager TxManager
	files     fs.FS
	logger    Logger
}

func NewMigrator(db dbmetrics.DBExecutor, txManager TxManager, files fs.FS, logger Logger) *Migrator {
	return &Migrator{db: db, txManager: txManager, files: files, logger: logger}
}

// Up применяет все ещё не применённые миграции по возрастанию версии
func (m *Migrator) Up(ctx context.Context) error {
	const createTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	if _, err := m.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("%w: create schema_migrations: %v", ErrApplyMigration, err)
	}

	migrations, err := load(m.files)
	if err != nil {
		return err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if applied[mig.version] {
			continue
		}

		err := m.txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, m.db)
			if _, err := executor.ExecContext(txCtx, mig.sql); err != nil {
				return err
			}

			query, args, err := psqlbuilder.Insert("schema_migrations").
				Columns("version", "name").
				Values(mig.version, mig.name).
				ToSql()
			if err != nil {
				return err
			}
			_, err = executor.ExecContext(txCtx, query, args...)
			return err
		})
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApplyMigration, mig.name, err)
		}

		m.logger.Info("Applied migration %s", mig.name)
	}

	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[int]bool, error) {
	rows, err := m.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("%w: load applied versions: %v", ErrReadMigrations, err)
	}
	defer rows.Close()

	versions := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: scan version: %v", ErrReadMigrations, err)
		}
		versions[v] = true
	}
	return versions, rows.Err()
}

func load(files fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	out := make([]migration, 0, len(entries))
	seen := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("%w: version of %s: %v", ErrReadMigrations, entry.Name(), err)
		}
		if existing, ok := seen[version]; ok {
			return nil, fmt.Errorf("%w: duplicate version %d in %s and %s", ErrReadMigrations, version, existing, entry.Name())
		}
		seen[version] = entry.Name()

		raw, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadMigrations, entry.Name(), err)
		}
		out = append(out, migration{version: version, name: entry.Name(), sql: string(raw)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}
