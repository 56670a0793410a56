package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/importer"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: combineObservers(observers),
	}
}

func (s *importService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *importService) ImportTimetable(ctx context.Context, filePath string, replaceAll bool) (*TimetableImportResult, error) {
	tt, err := importer.LoadTimetable(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading timetable file: %w", err)
	}
	return s.ImportTimetableFromSchema(ctx, tt, replaceAll)
}

// ImportTimetableFromSchema stores a parsed timetable. Only the slots of the
// teachers named in tt are replaced unless replaceAll is set. When no teacher
// is active yet and the timetable names exactly one, that teacher becomes
// active.
func (s *importService) ImportTimetableFromSchema(ctx context.Context, tt *importer.TimetableImport, replaceAll bool) (result *TimetableImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"replace_all": replaceAll}
	defer func() { s.observe(ctx, "import-timetable", startedAt, fields, err) }()

	if errs := importer.ValidateTimetable(tt); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	slots := importer.ToSlots(tt)
	teachers := importer.Teachers(tt)

	imported := make(map[string]bool, len(teachers))
	for _, name := range teachers {
		imported[domain.TeacherKey(name)] = true
	}

	result = &TimetableImportResult{SlotCount: len(slots), Teachers: teachers}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		existing, err := st.timetable.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("loading timetable: %w", err)
		}

		next := make([]domain.TimetableSlot, 0, len(existing)+len(slots))
		for _, slot := range existing {
			if replaceAll || imported[domain.TeacherKey(slot.TeacherName)] {
				result.Replaced++
				continue
			}
			next = append(next, slot)
		}
		next = append(next, slots...)
		if err := st.timetable.ReplaceAll(ctx, next); err != nil {
			return fmt.Errorf("saving timetable: %w", err)
		}

		settings, err := st.settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		if strings.TrimSpace(settings.ActiveTeacher) == "" && len(teachers) == 1 {
			settings.ActiveTeacher = teachers[0]
		}
		if strings.TrimSpace(settings.ActiveTeacher) != "" {
			applyPickLists(settings, next)
		}
		if err := st.settings.Upsert(ctx, settings); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["slots"] = result.SlotCount
	fields["teachers"] = len(result.Teachers)
	fields["replaced"] = result.Replaced
	return result, nil
}

// ImportLessonCatalog replaces the lesson catalog with the file's entries.
func (s *importService) ImportLessonCatalog(ctx context.Context, filePath string) (count int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": filePath}
	defer func() { s.observe(ctx, "import-lesson-catalog", startedAt, fields, err) }()

	c, err := importer.LoadLessonCatalog(filePath)
	if err != nil {
		return 0, fmt.Errorf("loading lesson catalog file: %w", err)
	}
	if errs := importer.ValidateLessonCatalog(c); len(errs) > 0 {
		return 0, formatValidationErrors(errs)
	}
	entries := importer.ToLessonEntries(c)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return newStores(tx).lessonCatalog.ReplaceAll(ctx, entries)
	})
	if err != nil {
		return 0, fmt.Errorf("saving lesson catalog: %w", err)
	}
	fields["entries"] = len(entries)
	return len(entries), nil
}

// ImportEquipmentCatalog replaces the equipment catalog with the file's entries.
func (s *importService) ImportEquipmentCatalog(ctx context.Context, filePath string) (count int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": filePath}
	defer func() { s.observe(ctx, "import-equipment-catalog", startedAt, fields, err) }()

	c, err := importer.LoadEquipmentCatalog(filePath)
	if err != nil {
		return 0, fmt.Errorf("loading equipment catalog file: %w", err)
	}
	if errs := importer.ValidateEquipmentCatalog(c); len(errs) > 0 {
		return 0, formatValidationErrors(errs)
	}
	entries := importer.ToEquipmentEntries(c)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return newStores(tx).equipmentCatalog.ReplaceAll(ctx, entries)
	})
	if err != nil {
		return 0, fmt.Errorf("saving equipment catalog: %w", err)
	}
	fields["entries"] = len(entries)
	return len(entries), nil
}

func (s *importService) Catalogs(ctx context.Context) (*CatalogSummary, error) {
	var summary CatalogSummary
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		var err error
		if summary.Lessons, err = st.lessonCatalog.ListAll(ctx); err != nil {
			return fmt.Errorf("loading lesson catalog: %w", err)
		}
		if summary.Equipment, err = st.equipmentCatalog.ListAll(ctx); err != nil {
			return fmt.Errorf("loading equipment catalog: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
