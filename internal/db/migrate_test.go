package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_Schema(t *testing.T) {
	db := openTestDB(t)

	objects := []struct{ kind, name string }{
		{"table", "timetable_slots"},
		{"table", "schedule_rows"},
		{"table", "equipment_rows"},
		{"table", "lesson_catalog"},
		{"table", "equipment_catalog"},
		{"table", "settings"},
		{"table", "week_states"},
		{"index", "idx_lesson_catalog_key"},
		{"index", "idx_equipment_catalog_key"},
		{"index", "idx_schedule_rows_teacher_week"},
		{"index", "idx_equipment_rows_teacher_week"},
	}
	for _, o := range objects {
		var n int
		err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = ? AND name = ?`, o.kind, o.name).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "%s %s", o.kind, o.name)
	}
}

func TestMigrate_FreshSchemaColumns(t *testing.T) {
	db := openTestDB(t)

	columns := map[string][]string{
		"schedule_rows":  {"teacher_name", "teacher_key", "notes"},
		"equipment_rows": {"teacher_name", "teacher_key", "quantity"},
		"settings":       {"subjects", "classes"},
	}
	for table, want := range columns {
		rows, err := db.Query(`SELECT name FROM pragma_table_info(?)`, table)
		require.NoError(t, err)
		var got []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			got = append(got, name)
		}
		require.NoError(t, rows.Err())
		rows.Close()
		assert.Subset(t, got, want, table)
	}

	// Owner keys come from the repositories, never from a column default.
	_, err := db.Exec(`INSERT INTO equipment_rows (id, teacher_name, week, day, period) VALUES ('e1', 'Lan', 1, 0, 1)`)
	assert.Error(t, err)
}

func TestOpenDB_MemoryPragmas(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	// WAL does not apply to an in-memory database.
	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "memory", mode)
}

func TestMigrate_SeedsDefaultSettings(t *testing.T) {
	db := openTestDB(t)

	var week int
	var subjects, classes string
	err := db.QueryRow(`SELECT current_week, subjects, classes FROM settings WHERE id = 'default'`).Scan(&week, &subjects, &classes)
	require.NoError(t, err)
	assert.Equal(t, 1, week)
	assert.Equal(t, "[]", subjects)
	assert.Equal(t, "[]", classes)

	// Re-running must not add a second row.
	require.NoError(t, Migrate(db))
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_RejectsOutOfRangePeriod(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO timetable_slots (id, day_of_week, period) VALUES ('s1', 'Thứ 2', 8)`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO schedule_rows (id, teacher_name, teacher_key, week, day, period) VALUES ('r1', 'Lan', 'lan', 0, 0, 1)`)
	assert.Error(t, err, "week must be at least 1")

	_, err = db.Exec(`INSERT INTO schedule_rows (id, teacher_name, teacher_key, week, day, period) VALUES ('r2', 'Lan', 'lan', 1, 0, 1)`)
	assert.NoError(t, err)

	_, err = db.Exec(`INSERT INTO week_states (teacher_key, week, state, updated_at) VALUES ('lan', 1, 'done', '')`)
	assert.Error(t, err)
}
