package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
)

// SQLiteWeekStateRepo implements WeekStateRepo using a SQLite database.
type SQLiteWeekStateRepo struct {
	db db.DBTX
}

// NewSQLiteWeekStateRepo creates a new SQLiteWeekStateRepo.
func NewSQLiteWeekStateRepo(conn db.DBTX) *SQLiteWeekStateRepo {
	return &SQLiteWeekStateRepo{db: conn}
}

// Get returns the state of teacher's week. A week that was never recorded
// is empty.
func (r *SQLiteWeekStateRepo) Get(ctx context.Context, teacher string, week int) (domain.WeekState, error) {
	var state string
	err := r.db.QueryRowContext(ctx,
		`SELECT state FROM week_states WHERE teacher_key = ? AND week = ?`,
		domain.TeacherKey(teacher), week,
	).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WeekEmpty, nil
		}
		return "", fmt.Errorf("loading week state: %w", err)
	}
	return domain.WeekState(state), nil
}

func (r *SQLiteWeekStateRepo) Set(ctx context.Context, teacher string, week int, state domain.WeekState) error {
	if !domain.ValidWeekStates[state] {
		return fmt.Errorf("invalid week state %q", state)
	}
	query := `INSERT INTO week_states (teacher_key, week, state, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(teacher_key, week) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, domain.TeacherKey(teacher), week, string(state), nowUTC()); err != nil {
		return fmt.Errorf("saving week state: %w", err)
	}
	return nil
}
