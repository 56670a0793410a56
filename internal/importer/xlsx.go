package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/xuri/excelize/v2"
)

// column identifies a field a spreadsheet column can carry.
type column int

const (
	colSubject column = iota
	colLessonNumber
	colLessonName
	colEquipmentName
	colQuantity
	colDay
	colPeriod
	colClass
	colTeacher
)

// headerAliases maps folded header captions to columns.
var headerAliases = map[string]column{
	"mon": colSubject, "mon hoc": colSubject, "subject": colSubject,
	"tiet": colLessonNumber, "tiet ppct": colLessonNumber, "ppct": colLessonNumber,
	"so tiet": colLessonNumber, "tiet thu": colLessonNumber, "lesson number": colLessonNumber, "lesson_number": colLessonNumber,
	"ten bai": colLessonName, "ten bai hoc": colLessonName, "bai hoc": colLessonName, "bai": colLessonName,
	"lesson": colLessonName, "lesson name": colLessonName, "lesson_name": colLessonName,
	"thiet bi": colEquipmentName, "ten thiet bi": colEquipmentName, "do dung": colEquipmentName,
	"do dung day hoc": colEquipmentName, "equipment": colEquipmentName, "equipment_name": colEquipmentName,
	"so luong": colQuantity, "sl": colQuantity, "quantity": colQuantity, "qty": colQuantity,
	"thu": colDay, "ngay": colDay, "day": colDay,
	"tiet day": colPeriod, "period": colPeriod,
	"lop": colClass, "class": colClass,
	"giao vien": colTeacher, "gv": colTeacher, "teacher": colTeacher,
}

// headerScanRows bounds how far down a sheet the header row is searched for,
// since catalogs often start with a title block.
const headerScanRows = 5

func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// layout locates the columns of a sheet. When no header row is recognized
// the fallback order is used and every row is data.
func layout(rows [][]string, required []column, fallback []column) (map[column]int, int) {
	limit := min(len(rows), headerScanRows)
	for i := 0; i < limit; i++ {
		cols := make(map[column]int)
		for j, caption := range rows[i] {
			c, ok := headerAliases[domain.FoldLabel(caption)]
			if !ok {
				continue
			}
			if _, dup := cols[c]; !dup {
				cols[c] = j
			}
		}
		if hasAll(cols, required) {
			return cols, i + 1
		}
	}
	cols := make(map[column]int, len(fallback))
	for j, c := range fallback {
		cols[c] = j
	}
	return cols, 0
}

func hasAll(cols map[column]int, required []column) bool {
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			return false
		}
	}
	return true
}

func cell(row []string, cols map[column]int, c column) string {
	j, ok := cols[c]
	if !ok || j >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[j])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func lessonsFromRows(rows [][]string) (*LessonCatalogImport, error) {
	cols, start := layout(rows,
		[]column{colSubject, colLessonNumber, colLessonName},
		[]column{colSubject, colLessonNumber, colLessonName})

	var c LessonCatalogImport
	for _, row := range rows[start:] {
		if blank(row) {
			continue
		}
		c.Lessons = append(c.Lessons, LessonImport{
			Subject:      cell(row, cols, colSubject),
			LessonNumber: cell(row, cols, colLessonNumber),
			LessonName:   cell(row, cols, colLessonName),
		})
	}
	if len(c.Lessons) == 0 {
		return nil, ErrEmptySheet
	}
	return &c, nil
}

func equipmentFromRows(rows [][]string) (*EquipmentCatalogImport, error) {
	cols, start := layout(rows,
		[]column{colSubject, colLessonNumber, colEquipmentName},
		[]column{colSubject, colLessonNumber, colEquipmentName, colQuantity})

	var c EquipmentCatalogImport
	for _, row := range rows[start:] {
		if blank(row) {
			continue
		}
		c.Equipment = append(c.Equipment, EquipmentImport{
			Subject:       cell(row, cols, colSubject),
			LessonNumber:  cell(row, cols, colLessonNumber),
			EquipmentName: cell(row, cols, colEquipmentName),
			Quantity:      cell(row, cols, colQuantity),
		})
	}
	if len(c.Equipment) == 0 {
		return nil, ErrEmptySheet
	}
	return &c, nil
}

func timetableFromRows(rows [][]string) (*TimetableImport, error) {
	cols, start := layout(rows,
		[]column{colDay, colTeacher},
		[]column{colDay, colPeriod, colSubject, colClass, colTeacher})
	// In a timetable sheet "Tiết" is the period, not a curriculum number.
	if j, ok := cols[colLessonNumber]; ok {
		if _, has := cols[colPeriod]; !has {
			cols[colPeriod] = j
		}
	}

	var tt TimetableImport
	for i, row := range rows[start:] {
		if blank(row) {
			continue
		}
		raw := cell(row, cols, colPeriod)
		period, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: period %q is not a number", start+i+1, raw)
		}
		tt.Entries = append(tt.Entries, TimetableEntryImport{
			Day:     cell(row, cols, colDay),
			Period:  period,
			Subject: cell(row, cols, colSubject),
			Class:   cell(row, cols, colClass),
			Teacher: cell(row, cols, colTeacher),
		})
	}
	if len(tt.Entries) == 0 {
		return nil, ErrEmptySheet
	}
	return &tt, nil
}
