package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite is a Storage kept in a single table of a SQLite database
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path and
// prepares the kv table
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if err := configure(ctx, db, "PRAGMA journal_mode = WAL"); err != nil {
		return nil, err
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if err := configure(ctx, db, "PRAGMA busy_timeout = 5000"); err != nil {
		return nil, err
	}

	return finishOpen(ctx, db)
}

// OpenInMemory opens a private in-memory database, used by tests
func OpenInMemory(ctx context.Context) (*SQLite, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return finishOpen(ctx, db)
}

func configure(ctx context.Context, db *sql.DB, pragma string) error {
	if _, err := db.ExecContext(ctx, pragma); err != nil {
		slog.Error("failed to configure database", "pragma", pragma, "error", err)
		closeDB(db)
		return err
	}
	return nil
}

func finishOpen(ctx context.Context, db *sql.DB) (*SQLite, error) {
	// SQLite benefits from a single writer connection. This also keeps an
	// in-memory database alive for as long as the pool is open.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.wrap("get", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return s.wrap("set", key, err)
	}
	return nil
}

// Close releases the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) wrap(op, key string, err error) error {
	if err.Error() == "sql: database is closed" {
		err = ErrClosed
	}
	return fmt.Errorf("failed to %s key %q: %w", op, key, err)
}
