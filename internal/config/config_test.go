package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nightset/nightset/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.DatabasePath != "nightset.db" {
		t.Fatalf("unexpected default database path: %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected default log level: %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("NIGHTSET_DATABASE_PATH", "/tmp/test.db")
	t.Setenv("NIGHTSET_LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.DatabasePath != "/tmp/test.db" {
		t.Fatalf("env override ignored: %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override ignored: %q", cfg.LogLevel)
	}
}

func TestLoadConfigYAMLOverlaysEnv(t *testing.T) {
	t.Setenv("NIGHTSET_DATABASE_PATH", "/tmp/from-env.db")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "database_path: /tmp/from-file.db\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.DatabasePath != "/tmp/from-file.db" {
		t.Fatalf("file should win over env: %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("file should win over env: %q", cfg.LogLevel)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := config.LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &config.Config{DatabasePath: "", BackupDir: ".", LogLevel: "info"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty database_path")
	}

	cfg = &config.Config{DatabasePath: "x.db", BackupDir: ".", LogLevel: "loud"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown log_level")
	}
}

func TestLoggerFallsBackOnUnknownLevel(t *testing.T) {
	cfg := &config.Config{DatabasePath: "x.db", BackupDir: ".", LogLevel: "loud"}
	if cfg.Logger() == nil {
		t.Fatalf("Logger should never return nil")
	}
}
