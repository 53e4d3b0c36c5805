// taskmanager is a single-user terminal task manager. Tasks with a
// title, description and deadline are kept in a local SQLite file and
// shown in a table with a live countdown to each deadline.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"task-manager/internal/config"
	"task-manager/internal/repository"
	"task-manager/internal/service"
	"task-manager/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, flagSet, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.ShowHelp {
		printHelp(flagSet)
		return nil
	}

	// stdout belongs to the TUI, so logs only go to a file when asked.
	var logOutput io.Writer = io.Discard
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: slog.LevelInfo}))

	db, err := repository.NewDB(cfg.DatabaseURL, logOutput)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	taskSvc := service.NewTaskService(taskRepo, time.Local, logger)

	initCtx, cancel := context.WithTimeout(context.Background(), cfg.OperationTimeout)
	err = taskSvc.Initialize(initCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	model := ui.NewModel(taskSvc,
		ui.WithLocation(taskSvc.Location()),
		ui.WithOperationTimeout(cfg.OperationTimeout),
	)
	program := tea.NewProgram(model, tea.WithAltScreen())

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.RefreshInterval, func() {
		program.Send(ui.RefreshMsg{})
	}); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("task manager started", "db", cfg.DatabaseURL, "refresh", cfg.RefreshInterval)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `taskmanager: track tasks and the time left until their deadlines.

Usage:
  taskmanager [flags]

Environment:
  TASKS_DATABASE_URL      SQLite file (same as --db)
  TASKS_REFRESH_INTERVAL  countdown refresh interval (same as --refresh)
  TASKS_LOG_FILE          log file (same as --log-file)

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
