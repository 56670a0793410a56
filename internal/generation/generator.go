// Package generation expands a teacher's timetable template into the dated
// lesson rows of one teaching week.
package generation

import (
	"sort"
	"strconv"

	"github.com/alexanderramin/lessonlog/internal/catalog"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/weekdate"
	"github.com/google/uuid"
)

// Input is everything GenerateWeek reads. History is the global schedule; only
// the teacher's rows of earlier weeks contribute to sequence numbers.
type Input struct {
	TeacherName   string
	Week          int
	WeekStartDate string
	Slots         []domain.TimetableSlot
	History       []domain.ScheduleRow
	Lessons       catalog.LessonIndex

	// NewID overrides row id generation; nil uses random UUIDs.
	NewID func() string
}

// resolvedSlot is a template slot whose day label has been resolved.
type resolvedSlot struct {
	slot domain.TimetableSlot
	day  domain.Weekday
}

// GenerateWeek returns fresh rows for in.Week, one per matching template slot,
// numbered by continuing each (subject, class) sequence from history. The
// rows are not merged into anything; an empty result means no slot matched.
func GenerateWeek(in Input) []domain.ScheduleRow {
	slots := sortSlots(domain.MatchTeacherSlots(in.Slots, in.TeacherName))
	if len(slots) == 0 {
		return nil
	}

	newID := in.NewID
	if newID == nil {
		newID = func() string { return uuid.New().String() }
	}

	counter := SeedCounter(in.History, in.TeacherName, in.Week)

	rows := make([]domain.ScheduleRow, 0, len(slots))
	for _, rs := range slots {
		next := counter.Next(rs.slot.Subject, rs.slot.ClassName)
		ppct := strconv.Itoa(next)
		lessonName, _ := in.Lessons.Lookup(rs.slot.Subject, ppct)

		rows = append(rows, domain.ScheduleRow{
			ID:          newID(),
			Week:        in.Week,
			Day:         rs.day,
			Date:        weekdate.DateOf(in.WeekStartDate, rs.day),
			Period:      rs.slot.Period,
			Subject:     rs.slot.Subject,
			ClassName:   rs.slot.ClassName,
			PPCTNumber:  ppct,
			LessonName:  lessonName,
			Notes:       "",
			TeacherName: in.TeacherName,
		})
	}
	return rows
}

// sortSlots resolves day labels, drops slots whose label is not a teaching
// day, and orders the rest by (day, period). The order fixes the sequence in
// which numbers are handed out within a week. A cell holds one lesson: when
// two slots land on the same day and period ("Thứ 2" and "Thứ Hai"), the
// first in template order is kept.
func sortSlots(slots []domain.TimetableSlot) []resolvedSlot {
	out := make([]resolvedSlot, 0, len(slots))
	for _, s := range slots {
		d, ok := s.Weekday()
		if !ok {
			continue
		}
		out = append(out, resolvedSlot{slot: s, day: d})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.day != b.day {
			return a.day < b.day
		}
		return a.slot.Period < b.slot.Period
	})

	seen := make(map[domain.Cell]bool, len(out))
	uniq := out[:0]
	for _, rs := range out {
		c := domain.Cell{Day: rs.day, Period: rs.slot.Period}
		if seen[c] {
			continue
		}
		seen[c] = true
		uniq = append(uniq, rs)
	}
	return uniq
}
