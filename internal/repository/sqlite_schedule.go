package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) ListAll(ctx context.Context) ([]domain.ScheduleRow, error) {
	query := `SELECT id, teacher_name, week, day, date, period, subject, class_name,
		ppct_number, lesson_name, notes
		FROM schedule_rows ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedule rows: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ReplaceAll overwrites every stored schedule row, keeping the slice order.
func (r *SQLiteScheduleRepo) ReplaceAll(ctx context.Context, rows []domain.ScheduleRow) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_rows`); err != nil {
		return fmt.Errorf("clearing schedule rows: %w", err)
	}
	query := `INSERT INTO schedule_rows (id, position, teacher_name, teacher_key, week, day, date,
		period, subject, class_name, ppct_number, lesson_name, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, row := range rows {
		_, err := r.db.ExecContext(ctx, query,
			row.ID,
			i,
			row.TeacherName,
			domain.TeacherKey(row.TeacherName),
			row.Week,
			row.Day.Index(),
			row.Date,
			row.Period,
			row.Subject,
			row.ClassName,
			row.PPCTNumber,
			row.LessonName,
			row.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting schedule row %s: %w", row.ID, err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) scanRows(rows *sql.Rows) ([]domain.ScheduleRow, error) {
	var out []domain.ScheduleRow
	for rows.Next() {
		var row domain.ScheduleRow
		var day int
		err := rows.Scan(
			&row.ID, &row.TeacherName, &row.Week, &day, &row.Date, &row.Period,
			&row.Subject, &row.ClassName, &row.PPCTNumber, &row.LessonName, &row.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule row: %w", err)
		}
		if row.Day, err = dayFromColumn(day); err != nil {
			return nil, fmt.Errorf("schedule row %s: %w", row.ID, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule rows: %w", err)
	}
	return out, nil
}
