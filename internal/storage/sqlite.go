package storage

import (
	"database/sql"
	"fmt"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// storageKey is the single fixed key the progress document lives under.
const storageKey = "wordventure_progress"

// SQLiteBlob stores the blob in a single-row key-value table.
type SQLiteBlob struct {
	db *sql.DB
}

// OpenSQLite creates a SQLiteBlob backed by the database at dsn,
// applying recommended pragmas and creating the table if needed.
func OpenSQLite(dsn string) (*SQLiteBlob, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS blobs (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteBlob{db: db}, nil
}

func (s *SQLiteBlob) Load() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM blobs WHERE key = ?`, storageKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load blob: %w", err)
	}
	return data, nil
}

func (s *SQLiteBlob) Save(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO blobs (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		storageKey, data,
	)
	if err != nil {
		return fmt.Errorf("save blob: %w", err)
	}
	return nil
}

func (s *SQLiteBlob) Delete() error {
	if _, err := s.db.Exec(`DELETE FROM blobs WHERE key = ?`, storageKey); err != nil {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

func (s *SQLiteBlob) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
