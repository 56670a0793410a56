// Package projection derives the equipment-request sheet from schedule rows
// and the equipment catalog.
package projection

import (
	"strings"

	"github.com/alexanderramin/lessonlog/internal/catalog"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/google/uuid"
)

var newID = func() string { return uuid.New().String() }

// ProjectEquipment rebuilds week's equipment rows from that week's schedule
// rows and returns the teacher's complete equipment set. existing must hold
// a single teacher's rows; rows of other weeks are returned unchanged and
// target-week rows whose schedule row is gone are dropped.
func ProjectEquipment(week int, schedule []domain.ScheduleRow, existing []domain.EquipmentRow, idx catalog.EquipmentIndex) []domain.EquipmentRow {
	current := make(map[domain.Cell]domain.EquipmentRow)
	out := make([]domain.EquipmentRow, 0, len(existing)+len(schedule))
	for _, e := range existing {
		if e.Week != week {
			out = append(out, e)
			continue
		}
		current[e.Cell()] = e
	}

	for _, r := range schedule {
		if r.Week != week {
			continue
		}
		var prev *domain.EquipmentRow
		if e, ok := current[r.Cell()]; ok {
			prev = &e
		}
		if row, ok := ProjectRow(r, prev, idx); ok {
			out = append(out, row)
		}
	}
	return out
}

// ProjectRow derives the equipment row for one schedule row. prev is the
// equipment row already stored for the same cell, or nil. The catalog wins
// whenever it has an entry; otherwise prev's manual values are kept. ok is
// false when no row should exist for the cell.
func ProjectRow(r domain.ScheduleRow, prev *domain.EquipmentRow, idx catalog.EquipmentIndex) (domain.EquipmentRow, bool) {
	row := domain.EquipmentRow{
		Week:        r.Week,
		Day:         r.Day,
		Date:        r.Date,
		Period:      r.Period,
		Subject:     r.Subject,
		ClassName:   r.ClassName,
		PPCTNumber:  r.PPCTNumber,
		TeacherName: r.TeacherName,
	}
	if prev != nil {
		row.ID = prev.ID
	}

	match, found := idx.Lookup(r.Subject, r.PPCTNumber)
	switch {
	case found:
		row.EquipmentName = match.Name
		row.Quantity = domain.CoalesceStr(match.Quantity, domain.DefaultQuantity)
	case prev != nil:
		row.EquipmentName = prev.EquipmentName
		row.Quantity = prev.Quantity
	case !r.HasLesson():
		return domain.EquipmentRow{}, false
	}

	row.Quantity = DisplayQuantity(row.EquipmentName, row.Quantity)
	if row.ID == "" {
		row.ID = newID()
	}
	return row, true
}

// DisplayQuantity applies the quantity rule: a named item defaults to "1",
// an unnamed one carries no quantity.
func DisplayQuantity(name, quantity string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	return domain.CoalesceStr(quantity, domain.DefaultQuantity)
}
