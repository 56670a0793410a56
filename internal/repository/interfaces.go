package repository

import (
	"context"

	"github.com/alexanderramin/lessonlog/internal/domain"
)

// The row stores are read and written wholesale: callers load the full data
// set, compute a new one and write it back within one transaction.

type TimetableRepo interface {
	ListAll(ctx context.Context) ([]domain.TimetableSlot, error)
	ReplaceAll(ctx context.Context, slots []domain.TimetableSlot) error
}

type ScheduleRepo interface {
	ListAll(ctx context.Context) ([]domain.ScheduleRow, error)
	ReplaceAll(ctx context.Context, rows []domain.ScheduleRow) error
}

type EquipmentRepo interface {
	ListAll(ctx context.Context) ([]domain.EquipmentRow, error)
	ReplaceAll(ctx context.Context, rows []domain.EquipmentRow) error
}

type LessonCatalogRepo interface {
	ListAll(ctx context.Context) ([]domain.LessonCatalogEntry, error)
	ReplaceAll(ctx context.Context, entries []domain.LessonCatalogEntry) error
}

type EquipmentCatalogRepo interface {
	ListAll(ctx context.Context) ([]domain.EquipmentCatalogEntry, error)
	ReplaceAll(ctx context.Context, entries []domain.EquipmentCatalogEntry) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

type WeekStateRepo interface {
	Get(ctx context.Context, teacher string, week int) (domain.WeekState, error)
	Set(ctx context.Context, teacher string, week int, state domain.WeekState) error
}
