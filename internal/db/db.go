package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a throwaway database that lives as long as the *sql.DB.
const MemoryPath = ":memory:"

// connPragmas are applied by the driver to every new connection.
var connPragmas = []string{"foreign_keys(1)", "busy_timeout(5000)"}

// OpenDB opens the lesson log database at path and brings its schema up to
// date. Parent directories are created as needed.
//
// An in-memory database is pinned to one connection; a second connection
// would open a separate, empty database.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == MemoryPath
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if memory {
		database.SetMaxOpenConns(1)
	} else if _, err := database.Exec("PRAGMA journal_mode = WAL"); err != nil {
		database.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return database, nil
}

func dsn(path string) string {
	q := url.Values{"_pragma": connPragmas}
	return "file:" + path + "?" + q.Encode()
}
