package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings resolved from the environment.
type Config struct {
	// DBPath is the agenda database file, or ":memory:" for an agenda that
	// lives only as long as the process.
	DBPath string
	// CalendarPath points to an optional YAML holiday calendar.
	CalendarPath string
	// LogUseCases enables slog output of service calls on stderr.
	LogUseCases bool
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:       os.Getenv("MEHIL_DB"),
		CalendarPath: os.Getenv("MEHIL_CALENDAR"),
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".mehil", "mehil.db")
	}
	if v := os.Getenv("MEHIL_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	return cfg, nil
}

// Engine builds the deadline engine, loading the calendar file when one is
// configured.
func (c Config) Engine() (*deadline.Engine, error) {
	if c.CalendarPath == "" {
		return deadline.Default(), nil
	}
	cal, err := deadline.LoadCalendar(c.CalendarPath)
	if err != nil {
		return nil, err
	}
	return deadline.NewEngine(cal)
}
