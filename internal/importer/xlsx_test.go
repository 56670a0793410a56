package importer

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadLessonCatalog_XLSXWithTitleAndHeader(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"PHÂN PHỐI CHƯƠNG TRÌNH MÔN TOÁN 6"},
		{},
		{"STT", "Môn học", "Tiết PPCT", "Tên bài học"},
		{1, "Toán", 1, "Tập hợp"},
		{2, "Toán", 2, "Cách ghi số tự nhiên"},
		{},
	})

	c, err := LoadLessonCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Lessons, 2)
	assert.Equal(t, LessonImport{Subject: "Toán", LessonNumber: "1", LessonName: "Tập hợp"}, c.Lessons[0])
	assert.Equal(t, "Cách ghi số tự nhiên", c.Lessons[1].LessonName)
	assert.Empty(t, ValidateLessonCatalog(c))
}

func TestLoadEquipmentCatalog_XLSXWithoutHeader(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Toán", "3", "Máy chiếu", "2"},
		{"Toán", "3", "Bảng phụ"},
	})

	c, err := LoadEquipmentCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Equipment, 2)
	assert.Equal(t, "2", c.Equipment[0].Quantity)
	assert.Empty(t, c.Equipment[1].Quantity)

	entries := ToEquipmentEntries(c)
	assert.Equal(t, "1", entries[1].Quantity)
}

func TestLoadEquipmentCatalog_XLSXHeaderAnyOrder(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Số lượng", "Đồ dùng dạy học", "Tiết", "Môn"},
		{"4", "Kính lúp", "12", "Khoa học"},
	})

	c, err := LoadEquipmentCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Equipment, 1)
	assert.Equal(t, EquipmentImport{Subject: "Khoa học", LessonNumber: "12", EquipmentName: "Kính lúp", Quantity: "4"}, c.Equipment[0])
}

func TestLoadLessonCatalog_EmptySheet(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Môn", "Tiết", "Tên bài"},
	})

	_, err := LoadLessonCatalog(path)
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestLoadTimetable_XLSX(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Thứ", "Tiết", "Môn", "Lớp", "Giáo viên"},
		{"Thứ 2", 1, "Toán", "6A", "Lan"},
		{"Thứ 7", 5, "Tin học", "8C", "Lan"},
	})

	tt, err := LoadTimetable(path)
	require.NoError(t, err)
	require.Len(t, tt.Entries, 2)
	assert.Equal(t, TimetableEntryImport{Day: "Thứ 7", Period: 5, Subject: "Tin học", Class: "8C", Teacher: "Lan"}, tt.Entries[1])
	assert.Empty(t, ValidateTimetable(tt))
}

func TestLoadTimetable_XLSXBadPeriod(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Thứ", "Tiết", "Môn", "Lớp", "Giáo viên"},
		{"Thứ 2", "một", "Toán", "6A", "Lan"},
	})

	_, err := LoadTimetable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}
