package domain

import "strings"

// RowKey is the natural key shared by schedule and equipment rows.
type RowKey struct {
	TeacherName string
	Week        int
	Day         Weekday
	Period      int
}

// Cell is the position of a row inside one teacher's week.
type Cell struct {
	Day    Weekday
	Period int
}

// ScheduleRow is one dated lesson of the lesson-progress record.
type ScheduleRow struct {
	ID          string
	Week        int
	Day         Weekday
	Date        string
	Period      int
	Subject     string
	ClassName   string
	PPCTNumber  string
	LessonName  string
	Notes       string
	TeacherName string
}

// Key returns the row's natural key.
func (r ScheduleRow) Key() RowKey {
	return RowKey{TeacherName: TeacherKey(r.TeacherName), Week: r.Week, Day: r.Day, Period: r.Period}
}

// Cell returns the row's position within its week.
func (r ScheduleRow) Cell() Cell {
	return Cell{Day: r.Day, Period: r.Period}
}

// HasLesson reports whether the row carries a subject or a class, the
// condition for it to have an equipment counterpart.
func (r ScheduleRow) HasLesson() bool {
	return strings.TrimSpace(r.Subject) != "" || strings.TrimSpace(r.ClassName) != ""
}

// EquipmentRow is one line of the equipment-request sheet. It is kept in
// step with the ScheduleRow of the same key.
type EquipmentRow struct {
	ID            string
	Week          int
	Day           Weekday
	Date          string
	Period        int
	Subject       string
	ClassName     string
	PPCTNumber    string
	EquipmentName string
	Quantity      string
	TeacherName   string
}

// Key returns the row's natural key.
func (r EquipmentRow) Key() RowKey {
	return RowKey{TeacherName: TeacherKey(r.TeacherName), Week: r.Week, Day: r.Day, Period: r.Period}
}

// Cell returns the row's position within its week.
func (r EquipmentRow) Cell() Cell {
	return Cell{Day: r.Day, Period: r.Period}
}
