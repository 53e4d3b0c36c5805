package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKS_DATABASE_URL", "")
	t.Setenv("TASKS_REFRESH_INTERVAL", "")
	t.Setenv("TASKS_LOG_FILE", "")

	cfg, _, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "tasks.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.RefreshInterval != time.Minute {
		t.Errorf("RefreshInterval = %s", cfg.RefreshInterval)
	}
	if cfg.OperationTimeout != 5*time.Second {
		t.Errorf("OperationTimeout = %s", cfg.OperationTimeout)
	}
	if cfg.LogFile != "" || cfg.ShowHelp {
		t.Errorf("unexpected cfg %+v", cfg)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TASKS_DATABASE_URL", " /var/lib/tasks/tasks.db ")
	t.Setenv("TASKS_REFRESH_INTERVAL", "30s")
	t.Setenv("TASKS_LOG_FILE", "tasks.log")

	cfg, _, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "/var/lib/tasks/tasks.db" || cfg.RefreshInterval != 30*time.Second || cfg.LogFile != "tasks.log" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TASKS_DATABASE_URL", "env.db")
	t.Setenv("TASKS_REFRESH_INTERVAL", "30s")

	cfg, _, err := Load([]string{"--db", "flag.db", "--refresh", "2m", "--timeout", "1s"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "flag.db" || cfg.RefreshInterval != 2*time.Minute || cfg.OperationTimeout != time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
	}{
		{"bad env duration", "soon", nil},
		{"negative env duration", "-1m", nil},
		{"zero refresh flag", "", []string{"--refresh", "0s"}},
		{"unknown flag", "", []string{"--verbose"}},
		{"positional argument", "", []string{"extra"}},
		{"empty db", "", []string{"--db", " "}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("TASKS_DATABASE_URL", "")
			t.Setenv("TASKS_REFRESH_INTERVAL", test.env)
			if _, _, err := Load(test.args); err == nil {
				t.Errorf("Load succeeded")
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	cfg, flagSet, err := Load([]string{"--help"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.ShowHelp || flagSet == nil {
		t.Errorf("ShowHelp = %v, flagSet = %v", cfg.ShowHelp, flagSet)
	}
}
