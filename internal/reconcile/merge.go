// Package reconcile folds one teacher's rows back into the stores shared by
// every teacher. All functions return new slices and leave their inputs
// untouched.
package reconcile

import "github.com/alexanderramin/lessonlog/internal/domain"

type keyed interface {
	Key() domain.RowKey
}

// partition splits global into the rows that belong to match and the rest,
// preserving order in both.
func partition[T keyed](global []T, match func(domain.RowKey) bool) (in, out []T) {
	for _, r := range global {
		if match(r.Key()) {
			in = append(in, r)
		} else {
			out = append(out, r)
		}
	}
	return in, out
}

func replacePartition[T keyed](global []T, match func(domain.RowKey) bool, updated []T) []T {
	_, others := partition(global, match)
	result := make([]T, 0, len(others)+len(updated))
	result = append(result, others...)
	return append(result, updated...)
}

// upsert writes each of rows at the position of the first stored row with
// the same key and drops any further stored rows under that key, so a key
// holds exactly one row afterwards. Find* return that same first row.
func upsert[T keyed](global []T, rows []T) []T {
	targets := make(map[domain.RowKey]bool, len(rows))
	for _, r := range rows {
		targets[r.Key()] = true
	}

	pos := make(map[domain.RowKey]int, len(global))
	result := make([]T, 0, len(global)+len(rows))
	for _, r := range global {
		k := r.Key()
		if _, dup := pos[k]; dup && targets[k] {
			continue
		}
		if _, ok := pos[k]; !ok {
			pos[k] = len(result)
		}
		result = append(result, r)
	}
	for _, r := range rows {
		if i, ok := pos[r.Key()]; ok {
			result[i] = r
			continue
		}
		pos[r.Key()] = len(result)
		result = append(result, r)
	}
	return result
}

func teacherMatch(teacher string) func(domain.RowKey) bool {
	key := domain.TeacherKey(teacher)
	return func(k domain.RowKey) bool { return k.TeacherName == key }
}

func teacherWeekMatch(teacher string, week int) func(domain.RowKey) bool {
	key := domain.TeacherKey(teacher)
	return func(k domain.RowKey) bool { return k.TeacherName == key && k.Week == week }
}

// MergeTeacherSchedule replaces every row of teacher with updated. updated
// must be the teacher's complete row set across all weeks; each row is
// stamped with teacher on the way in.
func MergeTeacherSchedule(global []domain.ScheduleRow, teacher string, updated []domain.ScheduleRow) []domain.ScheduleRow {
	return replacePartition(global, teacherMatch(teacher), retagSchedule(updated, teacher))
}

// MergeTeacherEquipment is MergeTeacherSchedule for equipment rows.
func MergeTeacherEquipment(global []domain.EquipmentRow, teacher string, updated []domain.EquipmentRow) []domain.EquipmentRow {
	return replacePartition(global, teacherMatch(teacher), retagEquipment(updated, teacher))
}

// ReplaceTeacherWeekSchedule replaces only the rows of teacher in week.
func ReplaceTeacherWeekSchedule(global []domain.ScheduleRow, teacher string, week int, rows []domain.ScheduleRow) []domain.ScheduleRow {
	return replacePartition(global, teacherWeekMatch(teacher, week), retagSchedule(rows, teacher))
}

// ReplaceTeacherWeekEquipment replaces only the equipment rows of teacher in week.
func ReplaceTeacherWeekEquipment(global []domain.EquipmentRow, teacher string, week int, rows []domain.EquipmentRow) []domain.EquipmentRow {
	return replacePartition(global, teacherWeekMatch(teacher, week), retagEquipment(rows, teacher))
}

// UpsertSchedule writes rows into global by natural key, replacing rows that
// share a key and appending the rest.
func UpsertSchedule(global []domain.ScheduleRow, rows ...domain.ScheduleRow) []domain.ScheduleRow {
	return upsert(global, rows)
}

// UpsertEquipment writes equipment rows into global by natural key.
func UpsertEquipment(global []domain.EquipmentRow, rows ...domain.EquipmentRow) []domain.EquipmentRow {
	return upsert(global, rows)
}

// RemoveEquipment drops the equipment row stored under key, if any.
func RemoveEquipment(global []domain.EquipmentRow, key domain.RowKey) []domain.EquipmentRow {
	_, rest := partition(global, func(k domain.RowKey) bool { return k == key })
	return rest
}

// TeacherSchedule returns the rows owned by teacher.
func TeacherSchedule(global []domain.ScheduleRow, teacher string) []domain.ScheduleRow {
	rows, _ := partition(global, teacherMatch(teacher))
	return rows
}

// TeacherEquipment returns the equipment rows owned by teacher.
func TeacherEquipment(global []domain.EquipmentRow, teacher string) []domain.EquipmentRow {
	rows, _ := partition(global, teacherMatch(teacher))
	return rows
}

// WeekSchedule returns teacher's rows of week.
func WeekSchedule(global []domain.ScheduleRow, teacher string, week int) []domain.ScheduleRow {
	rows, _ := partition(global, teacherWeekMatch(teacher, week))
	return rows
}

// WeekEquipment returns teacher's equipment rows of week.
func WeekEquipment(global []domain.EquipmentRow, teacher string, week int) []domain.EquipmentRow {
	rows, _ := partition(global, teacherWeekMatch(teacher, week))
	return rows
}

// FindSchedule returns the first row stored under key, the one upsert
// replaces.
func FindSchedule(global []domain.ScheduleRow, key domain.RowKey) (domain.ScheduleRow, bool) {
	for _, r := range global {
		if r.Key() == key {
			return r, true
		}
	}
	return domain.ScheduleRow{}, false
}

// FindEquipment returns the first equipment row stored under key.
func FindEquipment(global []domain.EquipmentRow, key domain.RowKey) (domain.EquipmentRow, bool) {
	for _, r := range global {
		if r.Key() == key {
			return r, true
		}
	}
	return domain.EquipmentRow{}, false
}

// HasData reports whether teacher already has rows in week.
func HasData(global []domain.ScheduleRow, teacher string, week int) bool {
	match := teacherWeekMatch(teacher, week)
	for _, r := range global {
		if match(r.Key()) {
			return true
		}
	}
	return false
}

func retagSchedule(rows []domain.ScheduleRow, teacher string) []domain.ScheduleRow {
	out := make([]domain.ScheduleRow, len(rows))
	for i, r := range rows {
		r.TeacherName = teacher
		out[i] = r
	}
	return out
}

func retagEquipment(rows []domain.EquipmentRow, teacher string) []domain.EquipmentRow {
	out := make([]domain.EquipmentRow, len(rows))
	for i, r := range rows {
		r.TeacherName = teacher
		out[i] = r
	}
	return out
}
