package cli

import (
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and inspect the lesson and equipment catalogs",
	}
	cmd.AddCommand(newCatalogImportCmd(app), newCatalogShowCmd(app))
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace a catalog from a .json or .xlsx file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "lessons FILE",
		Short: "Replace the lesson catalog (PPCT number to lesson name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Imports.ImportLessonCatalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(fmt.Sprintf("Imported %d lessons.", n)))
			return nil
		},
	}, &cobra.Command{
		Use:   "equipment FILE",
		Short: "Replace the equipment catalog (PPCT number to equipment)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Imports.ImportEquipmentCatalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(fmt.Sprintf("Imported %d equipment entries.", n)))
			return nil
		},
	})
	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarize the stored catalogs per subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Imports.Catalogs(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogs(sum.Lessons, sum.Equipment))
			return nil
		},
	}
}
