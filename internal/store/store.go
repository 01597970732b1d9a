// Package store persists carbon stats and processed record ids in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
)

// StatsKey is the kv key holding the serialised stats.
const StatsKey = "carbonStats"

// DB wraps the SQLite connection.
type DB struct {
	*sql.DB
}

// Open creates the parent directory if needed, opens the database at path
// and applies pending migrations. Use ":memory:" for a throwaway store.
func Open(path string) (*DB, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		// Other commands read and write while watch is running. Pragmas in
		// the DSN apply to every new connection, and write transactions take
		// the lock at BEGIN.
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite limitation
	db.SetMaxIdleConns(1)

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{db}, nil
}

// LoadStats implements carbon.StatsStore.
func (db *DB) LoadStats(ctx context.Context) (*carbon.Stats, error) {
	var raw string
	err := db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", StatsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	var s carbon.Stats
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &s, nil
}

// ApplyChanges implements carbon.StatsStore. The stats row and the ids of
// applied changes are written in one transaction, so persisted totals never
// include a record that is missing from processed_records.
func (db *DB) ApplyChanges(ctx context.Context, initial carbon.Stats, changes []carbon.Change) (carbon.Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return carbon.Stats{}, fmt.Errorf("failed to begin stats update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	s := initial
	var raw string
	err = tx.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", StatsKey).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return carbon.Stats{}, fmt.Errorf("failed to load stats: %w", err)
	default:
		// An undecodable row is replaced.
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			s = initial
		}
	}

	for _, c := range changes {
		if c.RecordID != "" {
			res, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO processed_records (id) VALUES (?)", c.RecordID)
			if err != nil {
				return carbon.Stats{}, fmt.Errorf("failed to record processed id: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				continue
			}
		}
		c.Apply(&s)
	}

	encoded, err := json.Marshal(s)
	if err != nil {
		return carbon.Stats{}, fmt.Errorf("failed to encode stats: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, StatsKey, string(encoded)); err != nil {
		return carbon.Stats{}, fmt.Errorf("failed to save stats: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return carbon.Stats{}, fmt.Errorf("failed to commit stats update: %w", err)
	}
	return s, nil
}

// runMigrations applies all migrations newer than the recorded version.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version INTEGER NOT NULL UNIQUE,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var currentVersion int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	for i, migration := range migrations {
		version := i + 1
		if version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(migration); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to execute migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", version, err)
		}
	}

	return nil
}

// migrations are applied in slice order; version = index + 1.
var migrations = []string{
	migration001KV,
	migration002ProcessedRecords,
}

const migration001KV = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL, -- JSON
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const migration002ProcessedRecords = `
CREATE TABLE IF NOT EXISTS processed_records (
	id TEXT PRIMARY KEY,
	seen_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
