package service

import (
	"context"
	"io"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/importer"
)

// WeekService runs the use cases on the active teacher's current week. Every
// method works on one consistent snapshot inside a single transaction.
type WeekService interface {
	// Open returns the current week, generating it from the timetable on the
	// first visit.
	Open(ctx context.Context) (*WeekView, error)
	Shift(ctx context.Context, delta int) (*WeekView, error)
	Goto(ctx context.Context, week int, startDate string) (*WeekView, error)
	ApplyTemplate(ctx context.Context) (*WeekView, error)
	Clear(ctx context.Context) (*WeekView, error)
	EditCell(ctx context.Context, edit CellEdit) (*WeekView, error)
	EditEquipment(ctx context.Context, edit EquipmentEdit) (*WeekView, error)
	Export(ctx context.Context, w io.Writer) (*WeekView, error)
}

type TeacherService interface {
	Current(ctx context.Context) (*domain.Settings, error)
	Use(ctx context.Context, name string) (*domain.Settings, error)
	Timetable(ctx context.Context, all bool) ([]domain.TimetableSlot, error)
}

type ImportService interface {
	ImportTimetable(ctx context.Context, filePath string, replaceAll bool) (*TimetableImportResult, error)
	ImportTimetableFromSchema(ctx context.Context, tt *importer.TimetableImport, replaceAll bool) (*TimetableImportResult, error)
	ImportLessonCatalog(ctx context.Context, filePath string) (int, error)
	ImportEquipmentCatalog(ctx context.Context, filePath string) (int, error)
	Catalogs(ctx context.Context) (*CatalogSummary, error)
}

// WeekView is one teacher's week as shown and exported.
type WeekView struct {
	Teacher       string
	Week          int
	WeekStartDate string
	State         domain.WeekState
	Rows          []domain.ScheduleRow
	Equipment     []domain.EquipmentRow
	Subjects      []string
	Classes       []string

	// Populated is set when this call generated the week from the timetable.
	Populated bool
}

// Row returns the schedule row at cell, if any.
func (v *WeekView) Row(cell domain.Cell) (domain.ScheduleRow, bool) {
	for _, r := range v.Rows {
		if r.Cell() == cell {
			return r, true
		}
	}
	return domain.ScheduleRow{}, false
}

// CellEdit changes one cell of the current week. Nil fields are left as they
// are.
type CellEdit struct {
	Day        domain.Weekday
	Period     int
	Subject    *string
	ClassName  *string
	PPCTNumber *string
	LessonName *string
	Notes      *string
}

// lookupNeeded reports whether the edit changes the catalog key of the row
// without naming the lesson itself.
func (e CellEdit) lookupNeeded() bool {
	return e.LessonName == nil && (e.Subject != nil || e.PPCTNumber != nil)
}

// EquipmentEdit overrides the equipment line of one cell.
type EquipmentEdit struct {
	Day      domain.Weekday
	Period   int
	Name     *string
	Quantity *string
}

type TimetableImportResult struct {
	SlotCount int
	Teachers  []string
	// Replaced is the number of stored slots the import removed.
	Replaced int
}

type CatalogSummary struct {
	Lessons   []domain.LessonCatalogEntry
	Equipment []domain.EquipmentCatalogEntry
}
