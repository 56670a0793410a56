package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/cli/formatter"
	"github.com/alexanderramin/lessonlog/internal/config"
	"github.com/alexanderramin/lessonlog/internal/importer"
	"github.com/alexanderramin/lessonlog/internal/llm"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/spf13/cobra"
)

func newTimetableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timetable",
		Aliases: []string{"tkb"},
		Short:   "Import and list weekly timetable slots",
	}
	cmd.AddCommand(newTimetableImportCmd(app), newTimetableParseCmd(app), newTimetableListCmd(app))
	return cmd
}

func newTimetableImportCmd(app *App) *cobra.Command {
	var replaceAll bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import timetable slots from a .json or .xlsx file",
		Long: `Import timetable slots. Each teacher named in the file has their
stored slots replaced; other teachers are left alone unless --replace-all
is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Imports.ImportTimetable(cmd.Context(), args[0], replaceAll)
			if err != nil {
				return err
			}
			printImportResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&replaceAll, "replace-all", false, "Drop every stored slot before importing")
	return cmd
}

func newTimetableListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the active teacher's timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Teachers.Timetable(cmd.Context(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimetable(slots))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "List every teacher's slots")
	return cmd
}

func newTimetableParseCmd(app *App) *cobra.Command {
	var (
		teacher    string
		doImport   bool
		replaceAll bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Read a pasted timetable with the local LLM (FILE - reads stdin)",
		Long: `Turn free-form timetable text (copied from a document or an OCR'd
photo) into timetable slots using a local Ollama model. The slots are
printed for review; --import stores them.

Requires LESSONLOG_LLM_ENABLED=true.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Parser == nil {
				return errParserDisabled
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("teacher") {
				if settings, err := app.Teachers.Current(cmd.Context()); err == nil {
					teacher = settings.ActiveTeacher
				}
			}

			tt, err := app.Parser.Parse(cmd.Context(), text, teacher)
			if err != nil {
				if hint := llm.Hint(err); hint != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Hint: "+hint))
				}
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatTimetable(importer.ToSlots(tt)))
			if !doImport {
				fmt.Fprintln(out, formatter.Dim("Review the slots above, then rerun with --import to store them."))
				return nil
			}

			res, err := app.Imports.ImportTimetableFromSchema(cmd.Context(), tt, replaceAll)
			if err != nil {
				return err
			}
			printImportResult(out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher for entries that name none (default: active teacher)")
	cmd.Flags().BoolVar(&doImport, "import", false, "Store the parsed slots")
	cmd.Flags().BoolVar(&replaceAll, "replace-all", false, "With --import, drop every stored slot first")
	return cmd
}

var errParserDisabled = errors.New("timetable parser is disabled, set " + config.EnvLLMEnabled + "=true")

func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func printImportResult(out io.Writer, res *service.TimetableImportResult) {
	fmt.Fprintln(out, formatter.StyleGreen.Render(fmt.Sprintf("Imported %d slots for %d teachers.", res.SlotCount, len(res.Teachers))))
	if res.Replaced > 0 {
		fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Replaced %d stored slots.", res.Replaced)))
	}
	if len(res.Teachers) > 0 {
		fmt.Fprintf(out, "Teachers: %s\n", strings.Join(res.Teachers, ", "))
	}
}
