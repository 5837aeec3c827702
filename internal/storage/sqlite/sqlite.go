package sqlite

import (
	"context"
	"database/sql"

	"taskroll/internal/errors"

	_ "modernc.org/sqlite"
)

// Backend is a SQLite-backed key-value store. A single kv table holds one row
// per key; the task store uses exactly one key for the full task list snapshot.
type Backend struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at the given path and ensures
// the kv table exists. Use ":memory:" for an in-memory database.
func New(path string) (*Backend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Concurrent writers are serialized by the store's writer queue, but a
	// single connection keeps the in-memory database from fragmenting.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewStorageError("create schema", err)
	}

	return &Backend{db: db}, nil
}

// Get returns the value stored under key, or ("", false, nil) if absent.
func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string
	err := b.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewStorageError("get value", err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (b *Backend) Set(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := b.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("set value", err)
	}

	return nil
}

// Close closes the database connection
func (b *Backend) Close() error {
	return b.db.Close()
}
