package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeacherCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teacher",
		Short: "Show or switch the active teacher",
	}
	cmd.AddCommand(newTeacherUseCmd(app), newTeacherShowCmd(app))
	return cmd
}

func newTeacherUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use NAME",
		Short: "Make NAME the active teacher",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Teachers.Use(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active teacher: %s\n", formatter.Bold(settings.ActiveTeacher))
			if len(settings.Subjects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No timetable slots match this teacher yet."))
			}
			return nil
		},
	}
}

func newTeacherShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active teacher and current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Teachers.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(settings))
			return nil
		},
	}
}
