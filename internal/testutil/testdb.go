package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory lesson log database that is closed
// when t finishes. Each call gets its own database.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory lesson log database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps database in the production unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
