package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/lessonlog/internal/cli"
	"github.com/alexanderramin/lessonlog/internal/config"
	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/intelligence"
	"github.com/alexanderramin/lessonlog/internal/llm"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	logger := service.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	app := &cli.App{
		Weeks:    service.NewWeekService(uow, observers...),
		Teachers: service.NewTeacherService(uow, observers...),
		Imports:  service.NewImportService(uow, observers...),
	}

	// Wire the timetable text parser (only when the LLM is enabled)
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewSlogObserver(logger)
		}
		app.Parser = intelligence.NewTimetableParseService(llm.NewOllamaClient(cfg.LLM, observer))
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx := context.Background()
	if cfg.Teacher != "" {
		if err := activateDefaultTeacher(ctx, app.Teachers, cfg.Teacher); err != nil {
			return err
		}
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// activateDefaultTeacher makes name the active teacher when the workbook has
// none yet.
func activateDefaultTeacher(ctx context.Context, teachers service.TeacherService, name string) error {
	settings, err := teachers.Current(ctx)
	if err != nil {
		return err
	}
	if settings.ActiveTeacher != "" {
		return nil
	}
	if _, err := teachers.Use(ctx, name); err != nil {
		return fmt.Errorf("activating %s: %w", config.EnvTeacher, err)
	}
	return nil
}
