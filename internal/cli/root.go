package cli

import (
	"github.com/alexanderramin/lessonlog/internal/intelligence"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Weeks    service.WeekService
	Teachers service.TeacherService
	Imports  service.ImportService

	// Parser reads free-form timetable text. Nil when the LLM is disabled.
	Parser intelligence.TimetableParseService

	// IsInteractive reports whether stdin is a terminal. Forms and the week
	// browser refuse to start without one. Nil means not interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "lessonlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lessonlog",
		Short:         "Weekly lesson-progress record and equipment sheet for teachers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTeacherCmd(app),
		newWeekCmd(app),
		newEditCmd(app),
		newEquipmentCmd(app),
		newTimetableCmd(app),
		newCatalogCmd(app),
		newBrowseCmd(app),
	)

	return root
}
