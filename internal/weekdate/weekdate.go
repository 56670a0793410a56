// Package weekdate does the calendar arithmetic of teaching weeks. All dates
// are handled as UTC calendar days so results never shift across daylight
// saving boundaries. Malformed input yields an empty result, never a panic.
package weekdate

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lessonlog/internal/domain"
)

// ISOLayout is the storage and input form of dates.
const ISOLayout = "2006-01-02"

// DisplayLayout is the day/month form printed on week sheets.
const DisplayLayout = "02/01"

// Parse reads a YYYY-MM-DD date. It requires exactly three numeric tokens and
// rejects dates that do not exist (2024-02-30).
func Parse(iso string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(iso), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return time.Time{}, false
		}
		nums[i] = n
	}
	y, m, d := nums[0], nums[1], nums[2]
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != time.Month(m) {
		return time.Time{}, false
	}
	return t, true
}

// Valid reports whether iso is a well-formed calendar date.
func Valid(iso string) bool {
	_, ok := Parse(iso)
	return ok
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// AddDays returns iso shifted by n calendar days, or "" when iso is malformed.
func AddDays(iso string, n int) string {
	t, ok := Parse(iso)
	if !ok {
		return ""
	}
	return Format(t.AddDate(0, 0, n))
}

// DayIndexToDate returns the DD/MM date of the day at offset idx (Monday = 0
// .. Saturday = 5) of the week starting on weekStart. It returns "" for a
// malformed start date or an offset outside the teaching week.
func DayIndexToDate(weekStart string, idx int) string {
	if idx < 0 || idx >= domain.DaysPerWeek {
		return ""
	}
	t, ok := Parse(weekStart)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, idx).Format(DisplayLayout)
}

// DateOf is DayIndexToDate for a Weekday.
func DateOf(weekStart string, d domain.Weekday) string {
	return DayIndexToDate(weekStart, d.Index())
}

// DayIndexOf is the inverse of DayIndexToDate: the offset of date from the
// week start, when it falls within the teaching week.
func DayIndexOf(weekStart, date string) (int, bool) {
	start, ok := Parse(weekStart)
	if !ok {
		return 0, false
	}
	t, ok := Parse(date)
	if !ok {
		return 0, false
	}
	days := int(t.Sub(start).Hours() / 24)
	if days < 0 || days >= domain.DaysPerWeek {
		return 0, false
	}
	return days, true
}

// WeekdayOf reports the teaching day iso falls on. Sundays and malformed
// dates report false.
func WeekdayOf(iso string) (domain.Weekday, bool) {
	t, ok := Parse(iso)
	if !ok || t.Weekday() == time.Sunday {
		return 0, false
	}
	return domain.WeekdayFromIndex(int(t.Weekday()) - int(time.Monday))
}

// ShiftWeeks moves a week start date by delta whole weeks.
func ShiftWeeks(weekStart string, delta int) string {
	return AddDays(weekStart, 7*delta)
}

// MondayOf returns the Monday of the ISO week containing iso. Sundays map to
// the following Monday, since Sunday is not a teaching day.
func MondayOf(iso string) string {
	t, ok := Parse(iso)
	if !ok {
		return ""
	}
	offset := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		offset = -1
	}
	return Format(t.AddDate(0, 0, -offset))
}
