package testutil

import (
	"strconv"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/google/uuid"
)

// DefaultTeacher owns fixtures unless an option says otherwise.
const DefaultTeacher = "Nguyễn Thị Lan"

// Slot options
type SlotOption func(*domain.TimetableSlot)

func WithSlotTeacher(name string) SlotOption {
	return func(s *domain.TimetableSlot) {
		s.TeacherName = name
	}
}

func WithSlotClass(class string) SlotOption {
	return func(s *domain.TimetableSlot) {
		s.ClassName = class
	}
}

func NewTestSlot(day string, period int, subject string, opts ...SlotOption) domain.TimetableSlot {
	s := domain.TimetableSlot{
		ID:          uuid.New().String(),
		DayOfWeek:   day,
		Period:      period,
		Subject:     subject,
		ClassName:   "6A",
		TeacherName: DefaultTeacher,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Row options
type RowOption func(*domain.ScheduleRow)

func WithRowTeacher(name string) RowOption {
	return func(r *domain.ScheduleRow) {
		r.TeacherName = name
	}
}

func WithRowClass(class string) RowOption {
	return func(r *domain.ScheduleRow) {
		r.ClassName = class
	}
}

func WithPPCT(n string) RowOption {
	return func(r *domain.ScheduleRow) {
		r.PPCTNumber = n
	}
}

func WithNotes(notes string) RowOption {
	return func(r *domain.ScheduleRow) {
		r.Notes = notes
	}
}

func WithLessonName(name string) RowOption {
	return func(r *domain.ScheduleRow) {
		r.LessonName = name
	}
}

func NewTestRow(week int, day domain.Weekday, period int, subject string, opts ...RowOption) domain.ScheduleRow {
	r := domain.ScheduleRow{
		ID:          uuid.New().String(),
		Week:        week,
		Day:         day,
		Period:      period,
		Subject:     subject,
		ClassName:   "6A",
		PPCTNumber:  "1",
		TeacherName: DefaultTeacher,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Equipment row options
type EquipmentOption func(*domain.EquipmentRow)

func WithEquipmentTeacher(name string) EquipmentOption {
	return func(e *domain.EquipmentRow) {
		e.TeacherName = name
	}
}

func WithQuantity(q string) EquipmentOption {
	return func(e *domain.EquipmentRow) {
		e.Quantity = q
	}
}

func NewTestEquipmentRow(week int, day domain.Weekday, period int, name string, opts ...EquipmentOption) domain.EquipmentRow {
	e := domain.EquipmentRow{
		ID:            uuid.New().String(),
		Week:          week,
		Day:           day,
		Period:        period,
		Subject:       "Toán",
		ClassName:     "6A",
		PPCTNumber:    "1",
		EquipmentName: name,
		Quantity:      domain.DefaultQuantity,
		TeacherName:   DefaultTeacher,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestLessons builds catalog entries numbered from 1 for subject.
func NewTestLessons(subject string, names ...string) []domain.LessonCatalogEntry {
	entries := make([]domain.LessonCatalogEntry, len(names))
	for i, n := range names {
		entries[i] = domain.LessonCatalogEntry{
			Subject:      subject,
			LessonNumber: strconv.Itoa(i + 1),
			LessonName:   n,
		}
	}
	return entries
}
