package domain

// MaxPeriod is the last period of a teaching day. Periods 1-4 are the morning
// session and 5-7 the afternoon session.
const MaxPeriod = 7

// MorningPeriods is the number of periods in the morning session.
const MorningPeriods = 4

// TimetableSlot is one recurring entry of a teacher's weekly timetable.
// DayOfWeek keeps the label as it was imported; ParseWeekday resolves it.
type TimetableSlot struct {
	ID          string
	DayOfWeek   string
	Period      int
	Subject     string
	ClassName   string
	TeacherName string
}

// Weekday resolves the slot's day label.
func (s TimetableSlot) Weekday() (Weekday, bool) {
	return ParseWeekday(s.DayOfWeek)
}

// ValidPeriod reports whether p is within 1..MaxPeriod.
func ValidPeriod(p int) bool {
	return p >= 1 && p <= MaxPeriod
}

// SessionPeriod splits an absolute period into its session and the period
// number shown within that session: 5 becomes (afternoon, 1).
func SessionPeriod(p int) (afternoon bool, display int) {
	if p > MorningPeriods {
		return true, p - MorningPeriods
	}
	return false, p
}

// SessionLabel names the session of an absolute period: "Sáng" or "Chiều".
func SessionLabel(p int) string {
	if afternoon, _ := SessionPeriod(p); afternoon {
		return "Chiều"
	}
	return "Sáng"
}
