package domain

import (
	"sort"
	"strings"
)

// Weekday is a day of the six-day teaching week. Sunday is not part of the model.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek is the number of teaching days in a week (Monday..Saturday).
const DaysPerWeek = 6

var weekdayLabels = [DaysPerWeek]string{"Thứ 2", "Thứ 3", "Thứ 4", "Thứ 5", "Thứ 6", "Thứ 7"}

// Weekdays returns the teaching days in week order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Valid reports whether d is one of the six teaching days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Saturday
}

// Index returns the zero-based offset of d from Monday.
func (d Weekday) Index() int {
	return int(d)
}

// String returns the canonical label, e.g. "Thứ 2" for Monday.
func (d Weekday) String() string {
	if !d.Valid() {
		return ""
	}
	return weekdayLabels[d]
}

// WeekdayFromIndex converts a 0..5 offset into a Weekday.
func WeekdayFromIndex(i int) (Weekday, bool) {
	d := Weekday(i)
	return d, d.Valid()
}

// weekdayAliases maps compacted folded labels to days. Keys have diacritics,
// case and whitespace removed (see compactLabel).
var weekdayAliases = map[string]Weekday{
	"thu2": Monday, "thuhai": Monday, "t2": Monday, "monday": Monday, "mon": Monday, "2": Monday,
	"thu3": Tuesday, "thuba": Tuesday, "t3": Tuesday, "tuesday": Tuesday, "tue": Tuesday, "3": Tuesday,
	"thu4": Wednesday, "thutu": Wednesday, "t4": Wednesday, "wednesday": Wednesday, "wed": Wednesday, "4": Wednesday,
	"thu5": Thursday, "thunam": Thursday, "t5": Thursday, "thursday": Thursday, "thurs": Thursday, "5": Thursday,
	"thu6": Friday, "thusau": Friday, "t6": Friday, "friday": Friday, "fri": Friday, "6": Friday,
	"thu7": Saturday, "thubay": Saturday, "t7": Saturday, "saturday": Saturday, "sat": Saturday, "7": Saturday,
}

// containmentAliases are the aliases long enough to be matched as substrings,
// longest first so "thubay" wins over "thuba".
var containmentAliases = func() []string {
	var out []string
	for alias := range weekdayAliases {
		if len(alias) >= 4 {
			out = append(out, alias)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// ParseWeekday maps a free-text day label to a Weekday. Labels are compared
// without diacritics, case or whitespace; an exact alias match is tried first,
// then substring containment ("Thứ 2 (sáng)" is Monday).
func ParseWeekday(label string) (Weekday, bool) {
	compact := compactLabel(label)
	if compact == "" {
		return 0, false
	}
	if d, ok := weekdayAliases[compact]; ok {
		return d, true
	}
	for _, alias := range containmentAliases {
		if strings.Contains(compact, alias) {
			return weekdayAliases[alias], true
		}
	}
	return 0, false
}

func compactLabel(s string) string {
	return strings.ReplaceAll(FoldLabel(s), " ", "")
}
