// Package catalog builds the lookup tables that resolve a (subject, lesson
// number) pair to its lesson title and required equipment.
package catalog

import (
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
)

// Key builds the lookup key of a subject and lesson number. It returns "" when
// either part is blank; such keys are never stored.
func Key(subject, lessonNumber string) string {
	s := domain.NormalizeSubject(subject)
	n := strings.TrimSpace(lessonNumber)
	if s == "" || n == "" {
		return ""
	}
	return s + "|" + n
}

// LessonIndex maps catalog keys to lesson titles.
type LessonIndex struct {
	names map[string]string
}

// BuildLessonIndex indexes entries by subject and lesson number. A later entry
// for the same key replaces an earlier one.
func BuildLessonIndex(entries []domain.LessonCatalogEntry) LessonIndex {
	idx := LessonIndex{names: make(map[string]string, len(entries))}
	for _, e := range entries {
		k := Key(e.Subject, e.LessonNumber)
		if k == "" {
			continue
		}
		idx.names[k] = strings.TrimSpace(e.LessonName)
	}
	return idx
}

// Lookup returns the lesson title for subject and number.
func (idx LessonIndex) Lookup(subject, lessonNumber string) (string, bool) {
	k := Key(subject, lessonNumber)
	if k == "" || idx.names == nil {
		return "", false
	}
	name, ok := idx.names[k]
	return name, ok
}

// Len returns the number of indexed lessons.
func (idx LessonIndex) Len() int {
	return len(idx.names)
}

// Equipment is the merged equipment requirement of one lesson.
type Equipment struct {
	Name     string
	Quantity string
}

// EquipmentIndex maps catalog keys to merged equipment requirements.
type EquipmentIndex struct {
	items map[string]Equipment
}

// BuildEquipmentIndex indexes entries by subject and lesson number. Entries
// sharing a key are merged: names are joined with ", " unless the new name is
// already part of the accumulated one, and the first non-empty quantity is kept.
func BuildEquipmentIndex(entries []domain.EquipmentCatalogEntry) EquipmentIndex {
	idx := EquipmentIndex{items: make(map[string]Equipment, len(entries))}
	for _, e := range entries {
		k := Key(e.Subject, e.LessonNumber)
		if k == "" {
			continue
		}
		name := strings.TrimSpace(e.EquipmentName)
		qty := strings.TrimSpace(e.Quantity)

		cur, seen := idx.items[k]
		if !seen {
			idx.items[k] = Equipment{Name: name, Quantity: qty}
			continue
		}
		switch {
		case name == "":
		case cur.Name == "":
			cur.Name = name
		case !strings.Contains(cur.Name, name):
			cur.Name = cur.Name + ", " + name
		}
		if cur.Quantity == "" {
			cur.Quantity = qty
		}
		idx.items[k] = cur
	}
	return idx
}

// Lookup returns the equipment for subject and number.
func (idx EquipmentIndex) Lookup(subject, lessonNumber string) (Equipment, bool) {
	k := Key(subject, lessonNumber)
	if k == "" || idx.items == nil {
		return Equipment{}, false
	}
	e, ok := idx.items[k]
	return e, ok
}

// Len returns the number of indexed lessons with equipment.
func (idx EquipmentIndex) Len() int {
	return len(idx.items)
}
