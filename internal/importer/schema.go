package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptySheet is returned when a spreadsheet has no data rows.
var ErrEmptySheet = errors.New("spreadsheet has no data rows")

// ErrUnsupportedFormat is returned for files that are neither JSON nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// TimetableImport is the structured timetable produced by the text/AI parser.
type TimetableImport struct {
	Entries []TimetableEntryImport `json:"entries" validate:"required,min=1,dive"`
}

// TimetableEntryImport is one recurring timetable slot.
type TimetableEntryImport struct {
	Day     string `json:"day" validate:"notblank,weekday"`
	Period  int    `json:"period" validate:"min=1,max=7"`
	Subject string `json:"subject"`
	Class   string `json:"class"`
	Teacher string `json:"teacher" validate:"notblank"`
}

// LessonCatalogImport is the JSON form of the lesson catalog.
type LessonCatalogImport struct {
	Lessons []LessonImport `json:"lessons" validate:"required,min=1,dive"`
}

// LessonImport maps a subject's curriculum number to a lesson title.
type LessonImport struct {
	Subject      string `json:"subject" validate:"notblank"`
	LessonNumber string `json:"lesson_number" validate:"notblank"`
	LessonName   string `json:"lesson_name" validate:"notblank"`
}

// EquipmentCatalogImport is the JSON form of the equipment catalog.
type EquipmentCatalogImport struct {
	Equipment []EquipmentImport `json:"equipment" validate:"required,min=1,dive"`
}

// EquipmentImport maps a subject's curriculum number to required equipment.
type EquipmentImport struct {
	Subject       string `json:"subject" validate:"notblank"`
	LessonNumber  string `json:"lesson_number" validate:"notblank"`
	EquipmentName string `json:"equipment_name" validate:"notblank"`
	Quantity      string `json:"quantity"`
}

// LoadTimetable reads a timetable from a .json or .xlsx file. JSON may be
// either {"entries": [...]} or a bare array of entries.
func LoadTimetable(path string) (*TimetableImport, error) {
	switch fileKind(path) {
	case kindJSON:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseTimetableJSON(data)
	case kindXLSX:
		rows, err := readSheet(path)
		if err != nil {
			return nil, err
		}
		return timetableFromRows(rows)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseTimetableJSON decodes parser output.
func ParseTimetableJSON(data []byte) (*TimetableImport, error) {
	trimmed := bytes.TrimSpace(data)
	var tt TimetableImport
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &tt.Entries); err != nil {
			return nil, fmt.Errorf("parsing timetable JSON: %w", err)
		}
		return &tt, nil
	}
	if err := json.Unmarshal(trimmed, &tt); err != nil {
		return nil, fmt.Errorf("parsing timetable JSON: %w", err)
	}
	return &tt, nil
}

// LoadLessonCatalog reads the lesson catalog from a .json or .xlsx file.
func LoadLessonCatalog(path string) (*LessonCatalogImport, error) {
	switch fileKind(path) {
	case kindJSON:
		var c LessonCatalogImport
		if err := readJSON(path, &c); err != nil {
			return nil, fmt.Errorf("parsing lesson catalog JSON: %w", err)
		}
		return &c, nil
	case kindXLSX:
		rows, err := readSheet(path)
		if err != nil {
			return nil, err
		}
		return lessonsFromRows(rows)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadEquipmentCatalog reads the equipment catalog from a .json or .xlsx file.
func LoadEquipmentCatalog(path string) (*EquipmentCatalogImport, error) {
	switch fileKind(path) {
	case kindJSON:
		var c EquipmentCatalogImport
		if err := readJSON(path, &c); err != nil {
			return nil, fmt.Errorf("parsing equipment catalog JSON: %w", err)
		}
		return &c, nil
	case kindXLSX:
		rows, err := readSheet(path)
		if err != nil {
			return nil, err
		}
		return equipmentFromRows(rows)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

type kind int

const (
	kindUnknown kind = iota
	kindJSON
	kindXLSX
)

func fileKind(path string) kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kindJSON
	case ".xlsx", ".xlsm":
		return kindXLSX
	default:
		return kindUnknown
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
