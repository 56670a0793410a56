// Package export renders a teacher's week as a printable spreadsheet.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/weekdate"
	"github.com/xuri/excelize/v2"
)

const (
	ScheduleSheet  = "Báo giảng"
	EquipmentSheet = "Đồ dùng"
)

var (
	scheduleHeaders  = []string{"Thứ", "Ngày", "Buổi", "Tiết", "Môn", "Lớp", "Tiết PPCT", "Tên bài dạy", "Ghi chú"}
	equipmentHeaders = []string{"Thứ", "Ngày", "Buổi", "Tiết", "Môn", "Lớp", "Tiết PPCT", "Thiết bị, đồ dùng", "Số lượng"}

	scheduleWidths  = []float64{8, 8, 7, 5, 14, 8, 9, 40, 24}
	equipmentWidths = []float64{8, 8, 7, 5, 14, 8, 9, 40, 9}
)

// WeekSheet is everything printed for one teacher's week. Rows carry
// absolute periods 1..7; the sheet splits them into sessions.
type WeekSheet struct {
	Teacher       string
	Week          int
	WeekStartDate string
	Rows          []domain.ScheduleRow
	Equipment     []domain.EquipmentRow
}

// WriteWeekWorkbook writes ws as an .xlsx workbook with the lesson grid and
// the equipment request sheet.
func WriteWeekWorkbook(w io.Writer, ws WeekSheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ScheduleSheet); err != nil {
		return fmt.Errorf("naming schedule sheet: %w", err)
	}
	if _, err := f.NewSheet(EquipmentSheet); err != nil {
		return fmt.Errorf("creating equipment sheet: %w", err)
	}

	sw := &sheetWriter{f: f}
	writeScheduleSheet(sw, ws)
	writeEquipmentSheet(sw, ws)
	if sw.err != nil {
		return sw.err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// sheetWriter keeps the first excelize error so cell writes stay terse.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (s *sheetWriter) set(sheet string, col, row int, v any) {
	if s.err != nil {
		return
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetCellValue(sheet, name, v); err != nil {
		s.err = fmt.Errorf("setting %s!%s: %w", sheet, name, err)
	}
}

func (s *sheetWriter) merge(sheet string, fromCol, fromRow, toCol, toRow int) {
	if s.err != nil || (fromCol == toCol && fromRow == toRow) {
		return
	}
	from, _ := excelize.CoordinatesToCellName(fromCol, fromRow)
	to, _ := excelize.CoordinatesToCellName(toCol, toRow)
	if err := s.f.MergeCell(sheet, from, to); err != nil {
		s.err = fmt.Errorf("merging %s!%s:%s: %w", sheet, from, to, err)
	}
}

func (s *sheetWriter) style(sheet string, fromCol, fromRow, toCol, toRow int, style *excelize.Style) {
	if s.err != nil {
		return
	}
	id, err := s.f.NewStyle(style)
	if err != nil {
		s.err = fmt.Errorf("creating style: %w", err)
		return
	}
	from, _ := excelize.CoordinatesToCellName(fromCol, fromRow)
	to, _ := excelize.CoordinatesToCellName(toCol, toRow)
	if err := s.f.SetCellStyle(sheet, from, to, id); err != nil {
		s.err = fmt.Errorf("styling %s!%s:%s: %w", sheet, from, to, err)
	}
}

func (s *sheetWriter) widths(sheet string, widths []float64) {
	for i, width := range widths {
		if s.err != nil {
			return
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := s.f.SetColWidth(sheet, col, col, width); err != nil {
			s.err = fmt.Errorf("sizing %s!%s: %w", sheet, col, err)
		}
	}
}

var (
	titleStyle = &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}
	headerStyle = &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border:    borders(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}
	bodyStyle = &excelize.Style{
		Border:    borders(),
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	}
)

func borders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func title(ws WeekSheet, what string) string {
	t := fmt.Sprintf("%s TUẦN %d", what, ws.Week)
	if from, to := weekdate.DayIndexToDate(ws.WeekStartDate, 0), weekdate.DayIndexToDate(ws.WeekStartDate, domain.DaysPerWeek-1); from != "" {
		t += fmt.Sprintf(" (%s - %s)", from, to)
	}
	return t
}

func writeHeader(sw *sheetWriter, sheet string, ws WeekSheet, what string, headers []string) int {
	sw.set(sheet, 1, 1, title(ws, what))
	sw.merge(sheet, 1, 1, len(headers), 1)
	sw.style(sheet, 1, 1, len(headers), 1, titleStyle)
	sw.set(sheet, 1, 2, "Giáo viên: "+ws.Teacher)
	sw.merge(sheet, 1, 2, len(headers), 2)

	const headerRow = 4
	for i, h := range headers {
		sw.set(sheet, i+1, headerRow, h)
	}
	sw.style(sheet, 1, headerRow, len(headers), headerRow, headerStyle)
	return headerRow + 1
}

// writeScheduleSheet lays out the fixed 6-day by 7-period grid. Afternoon
// periods are numbered from 1 within their session.
func writeScheduleSheet(sw *sheetWriter, ws WeekSheet) {
	sheet := ScheduleSheet
	row := writeHeader(sw, sheet, ws, "BÁO GIẢNG", scheduleHeaders)
	first := row

	byCell := make(map[domain.Cell]domain.ScheduleRow, len(ws.Rows))
	for _, r := range ws.Rows {
		byCell[r.Cell()] = r
	}

	for _, day := range domain.Weekdays() {
		dayStart := row
		for period := 1; period <= domain.MaxPeriod; period++ {
			_, display := domain.SessionPeriod(period)
			sw.set(sheet, 3, row, domain.SessionLabel(period))
			sw.set(sheet, 4, row, display)
			if r, ok := byCell[domain.Cell{Day: day, Period: period}]; ok {
				sw.set(sheet, 5, row, r.Subject)
				sw.set(sheet, 6, row, r.ClassName)
				sw.set(sheet, 7, row, r.PPCTNumber)
				sw.set(sheet, 8, row, r.LessonName)
				sw.set(sheet, 9, row, r.Notes)
			}
			row++
		}
		sw.set(sheet, 1, dayStart, day.String())
		sw.set(sheet, 2, dayStart, weekdate.DateOf(ws.WeekStartDate, day))
		sw.merge(sheet, 1, dayStart, 1, row-1)
		sw.merge(sheet, 2, dayStart, 2, row-1)
		sw.merge(sheet, 3, dayStart, 3, dayStart+domain.MorningPeriods-1)
		sw.merge(sheet, 3, dayStart+domain.MorningPeriods, 3, row-1)
	}
	sw.style(sheet, 1, first, len(scheduleHeaders), row-1, bodyStyle)
	sw.widths(sheet, scheduleWidths)
}

func writeEquipmentSheet(sw *sheetWriter, ws WeekSheet) {
	sheet := EquipmentSheet
	row := writeHeader(sw, sheet, ws, "PHIẾU ĐĂNG KÝ ĐỒ DÙNG DẠY HỌC", equipmentHeaders)
	first := row

	rows := append([]domain.EquipmentRow(nil), ws.Equipment...)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		return rows[i].Period < rows[j].Period
	})

	for _, e := range rows {
		_, display := domain.SessionPeriod(e.Period)
		sw.set(sheet, 1, row, e.Day.String())
		sw.set(sheet, 2, row, e.Date)
		sw.set(sheet, 3, row, domain.SessionLabel(e.Period))
		sw.set(sheet, 4, row, display)
		sw.set(sheet, 5, row, e.Subject)
		sw.set(sheet, 6, row, e.ClassName)
		sw.set(sheet, 7, row, e.PPCTNumber)
		sw.set(sheet, 8, row, e.EquipmentName)
		sw.set(sheet, 9, row, e.Quantity)
		row++
	}
	if row > first {
		sw.style(sheet, 1, first, len(equipmentHeaders), row-1, bodyStyle)
	}
	sw.widths(sheet, equipmentWidths)
}
