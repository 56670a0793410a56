package cli

import (
	"strings"

	"github.com/alexanderramin/lessonlog/internal/cli/formatter"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lessonlogHuhTheme returns a huh theme using the formatter palette.
func lessonlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// cellFormValues holds the editable fields of one cell while a form runs.
type cellFormValues struct {
	Subject    string
	ClassName  string
	PPCTNumber string
	LessonName string
	Notes      string
}

func cellFormFrom(row domain.ScheduleRow) cellFormValues {
	return cellFormValues{
		Subject:    row.Subject,
		ClassName:  row.ClassName,
		PPCTNumber: row.PPCTNumber,
		LessonName: row.LessonName,
		Notes:      row.Notes,
	}
}

// toEdit returns an edit carrying only the fields that differ from row. An
// untouched lesson name is left nil so a new subject or PPCT number looks the
// name up in the catalog.
func (v cellFormValues) toEdit(cell domain.Cell, row domain.ScheduleRow) service.CellEdit {
	edit := service.CellEdit{Day: cell.Day, Period: cell.Period}
	changed := func(now, before string) *string {
		now = strings.TrimSpace(now)
		if now == strings.TrimSpace(before) {
			return nil
		}
		return &now
	}
	edit.Subject = changed(v.Subject, row.Subject)
	edit.ClassName = changed(v.ClassName, row.ClassName)
	edit.PPCTNumber = changed(v.PPCTNumber, row.PPCTNumber)
	edit.LessonName = changed(v.LessonName, row.LessonName)
	edit.Notes = changed(v.Notes, row.Notes)
	return edit
}

// pickOptions builds select options from a pick list, keeping current
// selectable when it is not on the list.
func pickOptions(list []string, current string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(trống)", "")}
	seen := false
	for _, v := range list {
		if v == current {
			seen = true
		}
		opts = append(opts, huh.NewOption(v, v))
	}
	if current != "" && !seen {
		opts = append(opts, huh.NewOption(current, current))
	}
	return opts
}

// cellForm returns a themed form editing values. Subject and class are picked
// from the teacher's timetable.
func cellForm(view *service.WeekView, values *cellFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Môn").
				Options(pickOptions(view.Subjects, values.Subject)...).
				Value(&values.Subject),
			huh.NewSelect[string]().
				Title("Lớp").
				Options(pickOptions(view.Classes, values.ClassName)...).
				Value(&values.ClassName),
			huh.NewInput().
				Title("Tiết PPCT").
				Placeholder("1").
				Value(&values.PPCTNumber),
			huh.NewInput().
				Title("Tên bài dạy").
				Description("Leave unchanged to look it up from the catalog").
				Value(&values.LessonName),
			huh.NewInput().
				Title("Ghi chú").
				Value(&values.Notes),
		),
	).WithTheme(lessonlogHuhTheme()).WithShowHelp(false)
}
