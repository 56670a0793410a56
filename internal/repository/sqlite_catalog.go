package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
)

// SQLiteLessonCatalogRepo implements LessonCatalogRepo using a SQLite database.
type SQLiteLessonCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteLessonCatalogRepo creates a new SQLiteLessonCatalogRepo.
func NewSQLiteLessonCatalogRepo(conn db.DBTX) *SQLiteLessonCatalogRepo {
	return &SQLiteLessonCatalogRepo{db: conn}
}

func (r *SQLiteLessonCatalogRepo) ListAll(ctx context.Context) ([]domain.LessonCatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subject, lesson_number, lesson_name FROM lesson_catalog ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing lesson catalog: %w", err)
	}
	defer rows.Close()

	var entries []domain.LessonCatalogEntry
	for rows.Next() {
		var e domain.LessonCatalogEntry
		if err := rows.Scan(&e.Subject, &e.LessonNumber, &e.LessonName); err != nil {
			return nil, fmt.Errorf("scanning lesson catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lesson catalog: %w", err)
	}
	return entries, nil
}

func (r *SQLiteLessonCatalogRepo) ReplaceAll(ctx context.Context, entries []domain.LessonCatalogEntry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM lesson_catalog`); err != nil {
		return fmt.Errorf("clearing lesson catalog: %w", err)
	}
	query := `INSERT INTO lesson_catalog (position, subject, lesson_number, lesson_name) VALUES (?, ?, ?, ?)`
	for i, e := range entries {
		if _, err := r.db.ExecContext(ctx, query, i, e.Subject, e.LessonNumber, e.LessonName); err != nil {
			return fmt.Errorf("inserting lesson catalog entry %d: %w", i, err)
		}
	}
	return nil
}

// SQLiteEquipmentCatalogRepo implements EquipmentCatalogRepo using a SQLite database.
type SQLiteEquipmentCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteEquipmentCatalogRepo creates a new SQLiteEquipmentCatalogRepo.
func NewSQLiteEquipmentCatalogRepo(conn db.DBTX) *SQLiteEquipmentCatalogRepo {
	return &SQLiteEquipmentCatalogRepo{db: conn}
}

func (r *SQLiteEquipmentCatalogRepo) ListAll(ctx context.Context) ([]domain.EquipmentCatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subject, lesson_number, equipment_name, quantity FROM equipment_catalog ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing equipment catalog: %w", err)
	}
	defer rows.Close()

	var entries []domain.EquipmentCatalogEntry
	for rows.Next() {
		var e domain.EquipmentCatalogEntry
		if err := rows.Scan(&e.Subject, &e.LessonNumber, &e.EquipmentName, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning equipment catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating equipment catalog: %w", err)
	}
	return entries, nil
}

// ReplaceAll overwrites the equipment catalog. Entries without a quantity
// are stored with the default quantity.
func (r *SQLiteEquipmentCatalogRepo) ReplaceAll(ctx context.Context, entries []domain.EquipmentCatalogEntry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM equipment_catalog`); err != nil {
		return fmt.Errorf("clearing equipment catalog: %w", err)
	}
	query := `INSERT INTO equipment_catalog (position, subject, lesson_number, equipment_name, quantity)
		VALUES (?, ?, ?, ?, ?)`
	for i, e := range entries {
		qty := domain.CoalesceStr(e.Quantity, domain.DefaultQuantity)
		if _, err := r.db.ExecContext(ctx, query, i, e.Subject, e.LessonNumber, e.EquipmentName, qty); err != nil {
			return fmt.Errorf("inserting equipment catalog entry %d: %w", i, err)
		}
	}
	return nil
}
