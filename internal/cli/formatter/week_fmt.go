package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/weekdate"
)

const (
	lessonWidth = 42
	notesWidth  = 28
)

// WeekHeader identifies the week being rendered.
type WeekHeader struct {
	Teacher       string
	Week          int
	WeekStartDate string
	State         domain.WeekState
}

// Title returns e.g. "Tuần 3 · 16/09 - 21/09".
func (h WeekHeader) Title() string {
	t := fmt.Sprintf("Tuần %d", h.Week)
	from := weekdate.DayIndexToDate(h.WeekStartDate, 0)
	if from == "" {
		return t
	}
	return fmt.Sprintf("%s · %s - %s", t, from, weekdate.DayIndexToDate(h.WeekStartDate, domain.DaysPerWeek-1))
}

func (h WeekHeader) render(b *strings.Builder) {
	b.WriteString(Header(h.Title()))
	b.WriteString("\n")
	fmt.Fprintf(b, "%s  %s\n\n", Bold(h.Teacher), StateIndicator(h.State))
}

// FormatWeek renders the lesson-progress rows of one week, grouped by day.
func FormatWeek(h WeekHeader, rows []domain.ScheduleRow) string {
	var b strings.Builder
	h.render(&b)
	if len(rows) == 0 {
		b.WriteString(Dim("No lessons recorded for this week."))
		b.WriteString("\n")
		return b.String()
	}

	sorted := append([]domain.ScheduleRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].Period < sorted[j].Period
	})

	headers := []string{"Thứ", "Ngày", "Buổi", "Tiết", "Môn", "Lớp", "PPCT", "Bài dạy", "Ghi chú"}
	table := make([][]string, 0, len(sorted))
	for i, r := range sorted {
		day, date := "", ""
		if i == 0 || sorted[i-1].Day != r.Day {
			day, date = r.Day.String(), r.Date
		}
		table = append(table, []string{
			day,
			date,
			sessionCell(r.Period),
			periodCell(r.Period),
			r.Subject,
			r.ClassName,
			r.PPCTNumber,
			Truncate(r.LessonName, lessonWidth),
			Dim(Truncate(r.Notes, notesWidth)),
		})
	}
	b.WriteString(RenderTable(headers, table))
	return b.String()
}

// FormatEquipment renders the equipment-request lines of one week.
func FormatEquipment(h WeekHeader, rows []domain.EquipmentRow) string {
	var b strings.Builder
	h.render(&b)
	if len(rows) == 0 {
		b.WriteString(Dim("No equipment lines for this week."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"Thứ", "Ngày", "Buổi", "Tiết", "Môn", "Lớp", "PPCT", "Thiết bị", "SL"}
	table := make([][]string, 0, len(rows))
	for _, e := range rows {
		name := e.EquipmentName
		if strings.TrimSpace(name) == "" {
			name = Dim("-")
		}
		table = append(table, []string{
			e.Day.String(),
			e.Date,
			sessionCell(e.Period),
			periodCell(e.Period),
			e.Subject,
			e.ClassName,
			e.PPCTNumber,
			Truncate(name, lessonWidth),
			e.Quantity,
		})
	}
	b.WriteString(RenderTable(headers, table))
	return b.String()
}

func sessionCell(period int) string {
	afternoon, _ := domain.SessionPeriod(period)
	return SessionColor(afternoon).Render(domain.SessionLabel(period))
}

func periodCell(period int) string {
	_, display := domain.SessionPeriod(period)
	return strconv.Itoa(display)
}
