package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
)

// SQLiteEquipmentRepo implements EquipmentRepo using a SQLite database.
type SQLiteEquipmentRepo struct {
	db db.DBTX
}

// NewSQLiteEquipmentRepo creates a new SQLiteEquipmentRepo.
func NewSQLiteEquipmentRepo(conn db.DBTX) *SQLiteEquipmentRepo {
	return &SQLiteEquipmentRepo{db: conn}
}

func (r *SQLiteEquipmentRepo) ListAll(ctx context.Context) ([]domain.EquipmentRow, error) {
	query := `SELECT id, teacher_name, week, day, date, period, subject, class_name,
		ppct_number, equipment_name, quantity
		FROM equipment_rows ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing equipment rows: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ReplaceAll overwrites every stored equipment row, keeping the slice order.
func (r *SQLiteEquipmentRepo) ReplaceAll(ctx context.Context, rows []domain.EquipmentRow) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM equipment_rows`); err != nil {
		return fmt.Errorf("clearing equipment rows: %w", err)
	}
	query := `INSERT INTO equipment_rows (id, position, teacher_name, teacher_key, week, day, date,
		period, subject, class_name, ppct_number, equipment_name, quantity)
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
			row.EquipmentName,
			row.Quantity,
		)
		if err != nil {
			return fmt.Errorf("inserting equipment row %s: %w", row.ID, err)
		}
	}
	return nil
}

func (r *SQLiteEquipmentRepo) scanRows(rows *sql.Rows) ([]domain.EquipmentRow, error) {
	var out []domain.EquipmentRow
	for rows.Next() {
		var row domain.EquipmentRow
		var day int
		err := rows.Scan(
			&row.ID, &row.TeacherName, &row.Week, &day, &row.Date, &row.Period,
			&row.Subject, &row.ClassName, &row.PPCTNumber, &row.EquipmentName, &row.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning equipment row: %w", err)
		}
		if row.Day, err = dayFromColumn(day); err != nil {
			return nil, fmt.Errorf("equipment row %s: %w", row.ID, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating equipment rows: %w", err)
	}
	return out, nil
}
