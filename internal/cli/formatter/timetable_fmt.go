package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FormatTimetable lists template slots. The teacher column is shown only
// when slots of more than one teacher are present.
func FormatTimetable(slots []domain.TimetableSlot) string {
	if len(slots) == 0 {
		return Dim("The timetable is empty. Import one with `lessonlog timetable import FILE`.") + "\n"
	}

	teachers := make(map[string]bool)
	for _, s := range slots {
		teachers[domain.TeacherKey(s.TeacherName)] = true
	}
	multi := len(teachers) > 1

	headers := []string{"Thứ", "Buổi", "Tiết", "Môn", "Lớp"}
	if multi {
		headers = append(headers, "Giáo viên")
	}
	rows := make([][]string, 0, len(slots))
	for _, s := range slots {
		day := StyleRed.Render(s.DayOfWeek + " ?")
		if d, ok := s.Weekday(); ok {
			day = d.String()
		}
		row := []string{day, sessionCell(s.Period), periodCell(s.Period), s.Subject, s.ClassName}
		if multi {
			row = append(row, s.TeacherName)
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatSettings renders the active teacher and current week.
func FormatSettings(s *domain.Settings) string {
	teacher := s.ActiveTeacher
	if strings.TrimSpace(teacher) == "" {
		teacher = Dim("(none, run `lessonlog teacher use NAME`)")
	}
	start := s.WeekStartDate
	if start == "" {
		start = Dim("(not set)")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render("Teacher:"), teacher)
	fmt.Fprintf(&b, "%s %d\n", StyleHeader.Render("Week:   "), s.CurrentWeek)
	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render("Start:  "), start)
	if len(s.Subjects) > 0 {
		fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render("Subjects:"), strings.Join(s.Subjects, ", "))
	}
	if len(s.Classes) > 0 {
		fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render("Classes:"), strings.Join(s.Classes, ", "))
	}
	return b.String()
}

// FormatCatalogs summarizes both catalogs per subject.
func FormatCatalogs(lessons []domain.LessonCatalogEntry, equipment []domain.EquipmentCatalogEntry) string {
	if len(lessons) == 0 && len(equipment) == 0 {
		return Dim("No catalogs imported yet.") + "\n"
	}

	type counts struct{ lessons, equipment int }
	bySubject := make(map[string]*counts)
	var subjects []string
	get := func(subject string) *counts {
		k := domain.NormalizeSubject(subject)
		if c, ok := bySubject[k]; ok {
			return c
		}
		c := &counts{}
		bySubject[k] = c
		subjects = append(subjects, subject)
		return c
	}
	for _, l := range lessons {
		get(l.Subject).lessons++
	}
	for _, e := range equipment {
		get(e.Subject).equipment++
	}
	collate.New(language.Vietnamese, collate.IgnoreCase).SortStrings(subjects)

	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		c := bySubject[domain.NormalizeSubject(s)]
		rows = append(rows, []string{s, fmt.Sprint(c.lessons), fmt.Sprint(c.equipment)})
	}
	var b strings.Builder
	b.WriteString(RenderTable([]string{"Môn", "Bài (PPCT)", "Thiết bị"}, rows))
	fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("%d lessons, %d equipment entries", len(lessons), len(equipment))))
	return b.String()
}
