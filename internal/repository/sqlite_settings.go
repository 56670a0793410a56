package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT current_week, week_start_date, active_teacher, subjects, classes
		FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var subjects, classes string
	err := row.Scan(&s.CurrentWeek, &s.WeekStartDate, &s.ActiveTeacher, &subjects, &classes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	if s.Subjects, err = decodeList(subjects); err != nil {
		return nil, fmt.Errorf("settings subjects: %w", err)
	}
	if s.Classes, err = decodeList(classes); err != nil {
		return nil, fmt.Errorf("settings classes: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	subjects, err := encodeList(s.Subjects)
	if err != nil {
		return err
	}
	classes, err := encodeList(s.Classes)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO settings (id, current_week, week_start_date, active_teacher, subjects, classes)
		VALUES ('default', ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, s.CurrentWeek, s.WeekStartDate, s.ActiveTeacher, subjects, classes)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
