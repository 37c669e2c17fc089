package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries process-level settings. Defaults come from NIGHTSET_*
// environment variables; an optional YAML file overlays them.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	BackupDir    string `yaml:"backup_dir"`
	SeedPath     string `yaml:"seed_path"`
	LogLevel     string `yaml:"log_level"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		DatabasePath: getEnv("NIGHTSET_DATABASE_PATH", "nightset.db"),
		BackupDir:    getEnv("NIGHTSET_BACKUP_DIR", "."),
		SeedPath:     getEnv("NIGHTSET_SEED_PATH", ""),
		LogLevel:     getEnv("NIGHTSET_LOG_LEVEL", "info"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the settings that every tool needs before touching disk.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.BackupDir == "" {
		return fmt.Errorf("backup_dir must not be empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Logger builds the process logger at the configured level. Unknown levels
// fall back to info.
func (c *Config) Logger() *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q", s)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
