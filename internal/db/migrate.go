package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS timetable_slots (
		id           TEXT PRIMARY KEY,
		position     INTEGER NOT NULL DEFAULT 0,
		day_of_week  TEXT NOT NULL,
		period       INTEGER NOT NULL CHECK(period BETWEEN 1 AND 7),
		subject      TEXT NOT NULL DEFAULT '',
		class_name   TEXT NOT NULL DEFAULT '',
		teacher_name TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_rows (
		id           TEXT PRIMARY KEY,
		position     INTEGER NOT NULL DEFAULT 0,
		teacher_name TEXT NOT NULL,
		teacher_key  TEXT NOT NULL,
		week         INTEGER NOT NULL CHECK(week >= 1),
		day          INTEGER NOT NULL CHECK(day BETWEEN 0 AND 5),
		date         TEXT NOT NULL DEFAULT '',
		period       INTEGER NOT NULL CHECK(period BETWEEN 1 AND 7),
		subject      TEXT NOT NULL DEFAULT '',
		class_name   TEXT NOT NULL DEFAULT '',
		ppct_number  TEXT NOT NULL DEFAULT '',
		lesson_name  TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS equipment_rows (
		id             TEXT PRIMARY KEY,
		position       INTEGER NOT NULL DEFAULT 0,
		teacher_name   TEXT NOT NULL,
		teacher_key    TEXT NOT NULL,
		week           INTEGER NOT NULL CHECK(week >= 1),
		day            INTEGER NOT NULL CHECK(day BETWEEN 0 AND 5),
		date           TEXT NOT NULL DEFAULT '',
		period         INTEGER NOT NULL CHECK(period BETWEEN 1 AND 7),
		subject        TEXT NOT NULL DEFAULT '',
		class_name     TEXT NOT NULL DEFAULT '',
		ppct_number    TEXT NOT NULL DEFAULT '',
		equipment_name TEXT NOT NULL DEFAULT '',
		quantity       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS lesson_catalog (
		position      INTEGER PRIMARY KEY,
		subject       TEXT NOT NULL,
		lesson_number TEXT NOT NULL,
		lesson_name   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS equipment_catalog (
		position       INTEGER PRIMARY KEY,
		subject        TEXT NOT NULL,
		lesson_number  TEXT NOT NULL,
		equipment_name TEXT NOT NULL DEFAULT '',
		quantity       TEXT NOT NULL DEFAULT '1'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_lesson_catalog_key ON lesson_catalog(subject, lesson_number)`,
	`CREATE INDEX IF NOT EXISTS idx_equipment_catalog_key ON equipment_catalog(subject, lesson_number)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id              TEXT PRIMARY KEY DEFAULT 'default',
		current_week    INTEGER NOT NULL DEFAULT 1 CHECK(current_week >= 1),
		week_start_date TEXT NOT NULL DEFAULT '',
		active_teacher  TEXT NOT NULL DEFAULT '',
		subjects        TEXT NOT NULL DEFAULT '[]',
		classes         TEXT NOT NULL DEFAULT '[]'
	)`,

	// Seed default settings
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	// teacher_key holds the owner in the folded form the reconciler compares
	`CREATE INDEX IF NOT EXISTS idx_schedule_rows_teacher_week ON schedule_rows(teacher_key, week)`,
	`CREATE INDEX IF NOT EXISTS idx_equipment_rows_teacher_week ON equipment_rows(teacher_key, week)`,

	`CREATE TABLE IF NOT EXISTS week_states (
		teacher_key TEXT NOT NULL,
		week        INTEGER NOT NULL CHECK(week >= 1),
		state       TEXT NOT NULL DEFAULT 'empty'
		            CHECK(state IN ('empty','generated','edited')),
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (teacher_key, week)
	)`,
}
