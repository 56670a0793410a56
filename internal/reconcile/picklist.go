package reconcile

import (
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PickLists are the subject and class choices offered while editing.
type PickLists struct {
	Subjects []string
	Classes  []string
}

// DerivePickLists collects the distinct subjects and classes of teacher's
// timetable slots, in Vietnamese alphabetical order. Values that differ only
// in case or spacing are listed once, using their first spelling.
func DerivePickLists(slots []domain.TimetableSlot, teacher string) PickLists {
	var subjects, classes distinct
	for _, s := range domain.MatchTeacherSlots(slots, teacher) {
		subjects.add(s.Subject)
		classes.add(s.ClassName)
	}
	return PickLists{Subjects: subjects.sorted(), Classes: classes.sorted()}
}

type distinct struct {
	seen   map[string]bool
	values []string
}

func (d *distinct) add(v string) {
	v = strings.TrimSpace(v)
	k := domain.NormalizeSubject(v)
	if k == "" {
		return
	}
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	if d.seen[k] {
		return
	}
	d.seen[k] = true
	d.values = append(d.values, v)
}

func (d *distinct) sorted() []string {
	out := append([]string{}, d.values...)
	collate.New(language.Vietnamese, collate.IgnoreCase).SortStrings(out)
	return out
}
