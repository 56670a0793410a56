package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("interactive mode needs a terminal")

func newEditCmd(app *App) *cobra.Command {
	var (
		day         weekdayValue
		period      int
		subject     string
		className   string
		ppct        string
		lesson      string
		notes       string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one cell of the current week",
		Example: `  lessonlog edit --day "Thứ 2" --period 1 --ppct 12
  lessonlog edit --day T3 --period 2 --notes "Kiểm tra 15 phút"
  lessonlog edit --day T4 --period 3 --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !day.set {
				return fmt.Errorf("--day is required")
			}
			if !domain.ValidPeriod(period) {
				return fmt.Errorf("--period must be between 1 and %d", domain.MaxPeriod)
			}
			cell := domain.Cell{Day: day.day, Period: period}

			var edit service.CellEdit
			if interactive {
				if !app.interactive() {
					return errNotInteractive
				}
				view, err := app.Weeks.Open(cmd.Context())
				if err != nil {
					return err
				}
				row, _ := view.Row(cell)
				values := cellFormFrom(row)
				if err := cellForm(view, &values).RunWithContext(cmd.Context()); err != nil {
					return fmt.Errorf("edit form: %w", err)
				}
				edit = values.toEdit(cell, row)
			} else {
				flags := cmd.Flags()
				edit = service.CellEdit{
					Day:        cell.Day,
					Period:     cell.Period,
					Subject:    optionalString(flags, "subject", subject),
					ClassName:  optionalString(flags, "class", className),
					PPCTNumber: optionalString(flags, "ppct", ppct),
					LessonName: optionalString(flags, "lesson", lesson),
					Notes:      optionalString(flags, "notes", notes),
				}
			}

			view, err := app.Weeks.EditCell(cmd.Context(), edit)
			if err != nil {
				return err
			}
			printWeek(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().Var(&day, "day", "Day of the cell (Thứ 2 .. Thứ 7)")
	cmd.Flags().IntVar(&period, "period", 0, "Period of the cell (1-4 morning, 5-7 afternoon)")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&className, "class", "", "Class")
	cmd.Flags().StringVar(&ppct, "ppct", "", "PPCT lesson number")
	cmd.Flags().StringVar(&lesson, "lesson", "", "Lesson name (looked up from the catalog when omitted)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the cell in a form")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}
