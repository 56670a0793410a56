package reconcile

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/weekdate"
)

var (
	// ErrInvalidTransition is returned when an event is not allowed in a state.
	ErrInvalidTransition = errors.New("invalid week state transition")

	// ErrWeekOutOfRange is returned when navigation would leave week 1..n.
	ErrWeekOutOfRange = errors.New("week must be at least 1")
)

// ShouldAutoPopulate reports whether visiting a week should run the
// generator: the week has never been generated or edited, holds no rows for
// the teacher, and the teacher has at least one timetable slot.
func ShouldAutoPopulate(state domain.WeekState, hasData bool, slotCount int) bool {
	return (state == "" || state == domain.WeekEmpty) && !hasData && slotCount > 0
}

// Transition returns the state a week moves to when event happens.
// Generation only starts from an empty week; applying the template is the
// one event that may overwrite an edited week.
func Transition(state domain.WeekState, event domain.WeekEvent) (domain.WeekState, error) {
	if state == "" {
		state = domain.WeekEmpty
	}
	if !domain.ValidWeekStates[state] {
		return state, fmt.Errorf("%w: unknown state %q", ErrInvalidTransition, state)
	}

	switch event {
	case domain.EventGenerate:
		if state != domain.WeekEmpty {
			return state, fmt.Errorf("%w: cannot generate %s week", ErrInvalidTransition, state)
		}
		return domain.WeekGenerated, nil
	case domain.EventApply:
		return domain.WeekGenerated, nil
	case domain.EventEdit:
		return domain.WeekEdited, nil
	case domain.EventClear:
		return domain.WeekEmpty, nil
	default:
		return state, fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, event)
	}
}

// ClearWeek blanks the derived fields of teacher's rows in week. Notes are
// kept and so are the rows.
func ClearWeek(global []domain.ScheduleRow, teacher string, week int) []domain.ScheduleRow {
	match := teacherWeekMatch(teacher, week)
	out := make([]domain.ScheduleRow, len(global))
	for i, r := range global {
		if match(r.Key()) {
			r.Subject = ""
			r.ClassName = ""
			r.PPCTNumber = ""
			r.LessonName = ""
		}
		out[i] = r
	}
	return out
}

// ClearWeekEquipment drops teacher's equipment rows of week; a cleared
// schedule row carries no lesson and so has no equipment counterpart.
func ClearWeekEquipment(global []domain.EquipmentRow, teacher string, week int) []domain.EquipmentRow {
	_, rest := partition(global, teacherWeekMatch(teacher, week))
	return rest
}

// ShiftWeek moves the current week by delta and the week start date by the
// same number of weeks. An invalid start date stays empty.
func ShiftWeek(week int, startDate string, delta int) (int, string, error) {
	next := week + delta
	if next < 1 {
		return week, startDate, fmt.Errorf("%w: %d", ErrWeekOutOfRange, next)
	}
	return next, weekdate.ShiftWeeks(startDate, delta), nil
}
