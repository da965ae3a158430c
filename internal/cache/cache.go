// Package cache stores raw CrossRef works responses in a local SQLite
// database keyed by DOI, so repeated generations of the same entry do not
// hit the network. It caches registry responses only; it is not a
// bibliography store.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// CacheDirName is the directory name under XDG_CACHE_HOME.
	CacheDirName = "bibgen"
	// DBFile is the cache database file name.
	DBFile = "crossref.db"
)

// DB wraps a SQLite cache database connection.
type DB struct {
	db *sql.DB
}

// DefaultPath returns the cache database path. Respects XDG_CACHE_HOME,
// defaults to ~/.cache/bibgen/crossref.db.
func DefaultPath() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, CacheDirName, DBFile)
}

// Open opens or creates the cache database at the given path, creating
// parent directories as needed.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the cache schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS works (
			doi TEXT PRIMARY KEY,
			response BLOB NOT NULL,
			fetched_at INTEGER NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached raw response for a DOI, or ok=false on a miss.
func (d *DB) Get(doi string) ([]byte, bool, error) {
	var response []byte
	err := d.db.QueryRow("SELECT response FROM works WHERE doi = ?", doi).Scan(&response)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache: %w", err)
	}
	return response, true, nil
}

// Put stores the raw response for a DOI, replacing any previous entry.
func (d *DB) Put(doi string, response []byte) error {
	_, err := d.db.Exec(
		"INSERT OR REPLACE INTO works (doi, response, fetched_at) VALUES (?, ?, ?)",
		doi, response, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
