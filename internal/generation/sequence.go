package generation

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
)

// ParsePPCT extracts the first run of ASCII digits from a sequence number such
// as "12", "Tiết 12" or "12-13".
func ParsePPCT(s string) (int, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

type sequenceKey struct {
	subject string
	class   string
}

// Counter tracks the last sequence number handed out per (subject, class).
type Counter struct {
	last map[sequenceKey]int
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{last: make(map[sequenceKey]int)}
}

func keyOf(subject, class string) sequenceKey {
	return sequenceKey{subject: domain.NormalizeSubject(subject), class: domain.NormalizeSubject(class)}
}

// SeedCounter initializes a counter from the teacher's rows of weeks before
// week. Rows with a blank subject or a sequence number without digits are
// ignored.
func SeedCounter(history []domain.ScheduleRow, teacher string, week int) *Counter {
	c := NewCounter()
	for _, r := range history {
		if r.Week >= week || !domain.SameTeacher(r.TeacherName, teacher) {
			continue
		}
		if strings.TrimSpace(r.Subject) == "" {
			continue
		}
		n, ok := ParsePPCT(r.PPCTNumber)
		if !ok {
			continue
		}
		c.Observe(r.Subject, r.ClassName, n)
	}
	return c
}

// Observe raises the counter for (subject, class) to n if n is larger.
func (c *Counter) Observe(subject, class string, n int) {
	k := keyOf(subject, class)
	if n > c.last[k] {
		c.last[k] = n
	}
}

// Next advances (subject, class) by one and returns the new number.
func (c *Counter) Next(subject, class string) int {
	k := keyOf(subject, class)
	c.last[k]++
	return c.last[k]
}
