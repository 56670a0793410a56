// Package config resolves lessonlog settings from defaults, optional .env
// files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/llm"
	"github.com/joho/godotenv"
)

const (
	EnvDB          = "LESSONLOG_DB"
	EnvTeacher     = "LESSONLOG_TEACHER"
	EnvLogUseCases = "LESSONLOG_LOG_USECASES"
	EnvLogLevel    = "LESSONLOG_LOG_LEVEL"
	EnvLogFormat   = "LESSONLOG_LOG_FORMAT"

	EnvLLMEnabled    = "LESSONLOG_LLM_ENABLED"
	EnvLLMLogCalls   = "LESSONLOG_LLM_LOG_CALLS"
	EnvLLMEndpoint   = "LESSONLOG_LLM_ENDPOINT"
	EnvLLMModel      = "LESSONLOG_LLM_MODEL"
	EnvLLMTimeoutMs  = "LESSONLOG_LLM_TIMEOUT_MS"
	EnvLLMMaxRetries = "LESSONLOG_LLM_MAX_RETRIES"
)

// Config holds the process-wide settings.
type Config struct {
	DBPath string
	// Teacher becomes the active teacher when the workbook has none.
	Teacher     string
	LogUseCases bool
	LogLevel    slog.Level
	LogFormat   string

	// LLM configures the timetable text parser.
	LLM llm.LLMConfig
}

// Default returns the configuration used when nothing is set. Data lives
// under home/.lessonlog.
func Default(home string) Config {
	return Config{
		DBPath:    filepath.Join(home, ".lessonlog", "lessonlog.db"),
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
		LLM:       llm.DefaultConfig(),
	}
}

// Load reads ./.env and ~/.lessonlog/.env when present, then the
// environment. Variables already set in the environment are never
// overridden by a .env file.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if err := LoadDotEnv(".env", filepath.Join(home, ".lessonlog", ".env")); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv, home), nil
}

// LoadDotEnv loads each existing file in order. Earlier files win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("checking %s: %w", p, err)
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// FromEnv builds a Config from getenv, falling back to defaults for unset or
// unparseable values.
func FromEnv(getenv func(string) string, home string) Config {
	cfg := Default(home)

	if v := strings.TrimSpace(getenv(EnvDB)); v != "" {
		cfg.DBPath = expandHome(v, home)
	}
	cfg.Teacher = strings.TrimSpace(getenv(EnvTeacher))
	if v := getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = level
		}
	}
	switch v := strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))); v {
	case "text", "json":
		cfg.LogFormat = v
	}
	applyLLMEnv(&cfg.LLM, getenv)
	return cfg
}

func applyLLMEnv(cfg *llm.LLMConfig, getenv func(string) string) {
	if v := getenv(EnvLLMEnabled); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := getenv(EnvLLMLogCalls); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := strings.TrimSpace(getenv(EnvLLMEndpoint)); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(getenv(EnvLLMModel)); v != "" {
		cfg.Model = v
	}
	if v := getenv(EnvLLMTimeoutMs); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := getenv(EnvLLMMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
