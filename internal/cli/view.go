package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/lessonlog/internal/cli/formatter"
	"github.com/alexanderramin/lessonlog/internal/service"
)

func weekHeader(v *service.WeekView) formatter.WeekHeader {
	return formatter.WeekHeader{
		Teacher:       v.Teacher,
		Week:          v.Week,
		WeekStartDate: v.WeekStartDate,
		State:         v.State,
	}
}

func printWeek(w io.Writer, v *service.WeekView) {
	if v.Populated {
		fmt.Fprintln(w, formatter.StyleGreen.Render(fmt.Sprintf("Generated %d lessons from the timetable.", len(v.Rows))))
	}
	fmt.Fprint(w, formatter.FormatWeek(weekHeader(v), v.Rows))
}

func printEquipment(w io.Writer, v *service.WeekView) {
	fmt.Fprint(w, formatter.FormatEquipment(weekHeader(v), v.Equipment))
}
