package importer

import (
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/google/uuid"
)

// ToSlots converts a validated timetable into template slots. Day labels are
// kept as written; the generator resolves them.
func ToSlots(tt *TimetableImport) []domain.TimetableSlot {
	slots := make([]domain.TimetableSlot, 0, len(tt.Entries))
	for _, e := range tt.Entries {
		slots = append(slots, domain.TimetableSlot{
			ID:          uuid.New().String(),
			DayOfWeek:   strings.TrimSpace(e.Day),
			Period:      e.Period,
			Subject:     strings.TrimSpace(e.Subject),
			ClassName:   strings.TrimSpace(e.Class),
			TeacherName: strings.TrimSpace(e.Teacher),
		})
	}
	return slots
}

// Teachers returns the distinct teacher names of a timetable in first-seen order.
func Teachers(tt *TimetableImport) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range tt.Entries {
		name := strings.TrimSpace(e.Teacher)
		k := domain.TeacherKey(name)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		names = append(names, name)
	}
	return names
}

// ToLessonEntries converts a validated lesson catalog.
func ToLessonEntries(c *LessonCatalogImport) []domain.LessonCatalogEntry {
	entries := make([]domain.LessonCatalogEntry, 0, len(c.Lessons))
	for _, l := range c.Lessons {
		entries = append(entries, domain.LessonCatalogEntry{
			Subject:      strings.TrimSpace(l.Subject),
			LessonNumber: strings.TrimSpace(l.LessonNumber),
			LessonName:   strings.TrimSpace(l.LessonName),
		})
	}
	return entries
}

// ToEquipmentEntries converts a validated equipment catalog. A missing
// quantity becomes the default quantity.
func ToEquipmentEntries(c *EquipmentCatalogImport) []domain.EquipmentCatalogEntry {
	entries := make([]domain.EquipmentCatalogEntry, 0, len(c.Equipment))
	for _, e := range c.Equipment {
		entries = append(entries, domain.EquipmentCatalogEntry{
			Subject:       strings.TrimSpace(e.Subject),
			LessonNumber:  strings.TrimSpace(e.LessonNumber),
			EquipmentName: strings.TrimSpace(e.EquipmentName),
			Quantity:      domain.CoalesceStr(strings.TrimSpace(e.Quantity), domain.DefaultQuantity),
		})
	}
	return entries
}
