package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Config keeps runtime settings for the task manager.
type Config struct {
	DatabaseURL      string
	RefreshInterval  time.Duration
	OperationTimeout time.Duration
	LogFile          string
	ShowHelp         bool
}

const (
	defaultDatabaseURL      = "tasks.db"
	defaultRefreshInterval  = time.Minute
	defaultOperationTimeout = 5 * time.Second
)

// Load reads configuration from environment variables, then applies
// command-line overrides from args (without the program name).
func Load(args []string) (Config, *pflag.FlagSet, error) {
	cfg := Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("TASKS_DATABASE_URL")),
		LogFile:     strings.TrimSpace(os.Getenv("TASKS_LOG_FILE")),
	}

	refresh, err := parseInterval("TASKS_REFRESH_INTERVAL", strings.TrimSpace(os.Getenv("TASKS_REFRESH_INTERVAL")))
	if err != nil {
		return cfg, nil, err
	}
	cfg.RefreshInterval = refresh

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	cfg.OperationTimeout = defaultOperationTimeout

	flagSet := pflag.NewFlagSet("taskmanager", pflag.ContinueOnError)
	flagSet.SetOutput(os.Stderr)
	flagSet.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "path to the SQLite database file")
	flagSet.DurationVar(&cfg.RefreshInterval, "refresh", cfg.RefreshInterval, "how often the time-left column is recomputed")
	flagSet.DurationVar(&cfg.OperationTimeout, "timeout", cfg.OperationTimeout, "timeout for a single database operation")
	flagSet.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append log records to this file (default: discard)")
	flagSet.BoolVarP(&cfg.ShowHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			cfg.ShowHelp = true
			return cfg, flagSet, nil
		}
		return cfg, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return cfg, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	if cfg.RefreshInterval <= 0 {
		return cfg, flagSet, fmt.Errorf("refresh interval must be positive, got %s", cfg.RefreshInterval)
	}
	if cfg.OperationTimeout <= 0 {
		return cfg, flagSet, fmt.Errorf("timeout must be positive, got %s", cfg.OperationTimeout)
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return cfg, flagSet, fmt.Errorf("database path is required")
	}

	return cfg, flagSet, nil
}

func parseInterval(name, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", name, raw)
	}
	return interval, nil
}
