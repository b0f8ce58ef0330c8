package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLiteBackend stores the progress blob in a SQLite key-value table,
// sharing the database file with the local leaderboard.
type SQLiteBackend struct {
	db   *sql.DB
	slot string
}

// OpenSQLite opens or creates the SQLite database and applies migrations.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	b := &SQLiteBackend{db: db, slot: SlotName}
	if err := b.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return b, nil
}

// DB exposes the underlying handle so collaborators (leaderboard) can share
// the same database file.
func (b *SQLiteBackend) DB() *sql.DB {
	return b.db
}

// Close closes the underlying database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress_slots (
			name TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := b.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the blob for the progress slot.
func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT data FROM progress_slots WHERE name = ?`, b.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save upserts the blob for the progress slot.
func (b *SQLiteBackend) Save(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO progress_slots (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		b.slot, data, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Remove clears the progress slot.
func (b *SQLiteBackend) Remove(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx,
		`DELETE FROM progress_slots WHERE name = ?`, b.slot)
	return err
}
