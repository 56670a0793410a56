package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/google/uuid"
)

// SQLiteTimetableRepo implements TimetableRepo using a SQLite database.
type SQLiteTimetableRepo struct {
	db db.DBTX
}

// NewSQLiteTimetableRepo creates a new SQLiteTimetableRepo.
func NewSQLiteTimetableRepo(conn db.DBTX) *SQLiteTimetableRepo {
	return &SQLiteTimetableRepo{db: conn}
}

func (r *SQLiteTimetableRepo) ListAll(ctx context.Context) ([]domain.TimetableSlot, error) {
	query := `SELECT id, day_of_week, period, subject, class_name, teacher_name
		FROM timetable_slots ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing timetable slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.TimetableSlot
	for rows.Next() {
		var s domain.TimetableSlot
		if err := rows.Scan(&s.ID, &s.DayOfWeek, &s.Period, &s.Subject, &s.ClassName, &s.TeacherName); err != nil {
			return nil, fmt.Errorf("scanning timetable slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timetable slots: %w", err)
	}
	return slots, nil
}

// ReplaceAll overwrites the stored timetable. Slots without an id get one.
func (r *SQLiteTimetableRepo) ReplaceAll(ctx context.Context, slots []domain.TimetableSlot) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timetable_slots`); err != nil {
		return fmt.Errorf("clearing timetable slots: %w", err)
	}
	query := `INSERT INTO timetable_slots (id, position, day_of_week, period, subject, class_name, teacher_name)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, s := range slots {
		id := s.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := r.db.ExecContext(ctx, query, id, i, s.DayOfWeek, s.Period, s.Subject, s.ClassName, s.TeacherName); err != nil {
			return fmt.Errorf("inserting timetable slot %d: %w", i, err)
		}
	}
	return nil
}
