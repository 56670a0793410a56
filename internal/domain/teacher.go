package domain

import "strings"

// TeacherKey is the comparison form of a teacher name.
func TeacherKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameTeacher reports whether two names refer to the same owner.
func SameTeacher(a, b string) bool {
	return TeacherKey(a) == TeacherKey(b)
}

// MatchTeacherSlots selects the slots owned by name. Slots whose teacher
// equals name (case-insensitively) win; when there are none, any slot whose
// teacher contains name is accepted so that "Văn A" still finds "Nguyễn Văn A".
// A slot owned by "An" is never picked up for "Hoàng Anh". An empty name
// selects nothing.
func MatchTeacherSlots(slots []TimetableSlot, name string) []TimetableSlot {
	key := TeacherKey(name)
	if key == "" {
		return nil
	}

	var exact []TimetableSlot
	for _, s := range slots {
		if TeacherKey(s.TeacherName) == key {
			exact = append(exact, s)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	var loose []TimetableSlot
	for _, s := range slots {
		owner := TeacherKey(s.TeacherName)
		if owner == "" {
			continue
		}
		if strings.Contains(owner, key) {
			loose = append(loose, s)
		}
	}
	return loose
}
