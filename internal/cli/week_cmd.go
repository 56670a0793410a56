package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/lessonlog/internal/cli/formatter"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show, navigate and generate weeks",
	}
	cmd.AddCommand(
		newWeekShowCmd(app),
		newWeekShiftCmd(app, "next", 1),
		newWeekShiftCmd(app, "prev", -1),
		newWeekGotoCmd(app),
		newWeekApplyCmd(app),
		newWeekClearCmd(app),
		newWeekExportCmd(app),
	)
	return cmd
}

func newWeekShowCmd(app *App) *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current week, generating it on the first visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			var view *service.WeekView
			var err error
			if cmd.Flags().Changed("week") {
				view, err = app.Weeks.Goto(cmd.Context(), week, "")
			} else {
				view, err = app.Weeks.Open(cmd.Context())
			}
			if err != nil {
				return err
			}
			printWeek(cmd.OutOrStdout(), view)
			return nil
		},
	}
	cmd.Flags().IntVar(&week, "week", 0, "Week number to show (moves the current week)")
	return cmd
}

func newWeekShiftCmd(app *App, use string, sign int) *cobra.Command {
	short := "Move forward N weeks (default 1)"
	if sign < 0 {
		short = "Move back N weeks (default 1)"
	}
	return &cobra.Command{
		Use:   use + " [N]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("invalid number of weeks %q", args[0])
				}
				n = v
			}
			view, err := app.Weeks.Shift(cmd.Context(), sign*n)
			if err != nil {
				return err
			}
			printWeek(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newWeekGotoCmd(app *App) *cobra.Command {
	var start isoDateValue

	cmd := &cobra.Command{
		Use:   "goto N",
		Short: "Jump to week N, optionally setting its start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid week %q", args[0])
			}
			view, err := app.Weeks.Goto(cmd.Context(), week, start.String())
			if err != nil {
				return err
			}
			printWeek(cmd.OutOrStdout(), view)
			return nil
		},
	}
	cmd.Flags().Var(&start, "start", "First day of the week (YYYY-MM-DD, aligned to Monday)")
	return cmd
}

func newWeekApplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Regenerate the current week from the timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Weeks.ApplyTemplate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(fmt.Sprintf("Applied timetable: %d lessons.", len(view.Rows))))
			printWeek(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newWeekClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Blank the current week's lessons, keeping notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Weeks.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared week %d.\n", view.Week)
			return nil
		},
	}
}

func newWeekExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current week to an .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing %s: %w", out, cerr)
				}
				if err != nil {
					_ = os.Remove(out)
				}
			}()

			view, err := app.Weeks.Export(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported week %d (%d lessons, %d equipment lines) to %s\n",
				view.Week, len(view.Rows), len(view.Equipment), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.xlsx)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
