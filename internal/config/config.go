// Package config loads process configuration: an optional YAML file,
// then environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jangyunsu11/UniversityPrepApp/internal/llm"
	"github.com/jangyunsu11/UniversityPrepApp/internal/repository"
	"github.com/jangyunsu11/UniversityPrepApp/internal/telemetry"
	"gopkg.in/yaml.v3"
)

// Config is the full process configuration.
type Config struct {
	LLM              llm.LLMConfig    `yaml:"llm"`
	Log              LogConfig        `yaml:"log"`
	DBPath           string           `yaml:"db_path" validate:"required"`
	HistoryRetention int              `yaml:"history_retention" validate:"gte=0"`
	Trace            telemetry.Config `yaml:"trace"`
	MetricsAddr      string           `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Path  string `yaml:"path" validate:"required"`
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Dir returns the per-user state directory, ~/.uniprep.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".uniprep"
	}
	return filepath.Join(home, ".uniprep")
}

// DefaultPath is where Load looks when no file is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	dir := Dir()
	return Config{
		LLM: llm.DefaultConfig(),
		Log: LogConfig{
			Path:  filepath.Join(dir, "uniprep.log"),
			Level: "info",
		},
		DBPath:           filepath.Join(dir, "uniprep.db"),
		HistoryRetention: repository.DefaultHistoryRetention,
		Trace: telemetry.Config{
			Path: filepath.Join(dir, "traces.jsonl"),
		},
	}
}

// Load reads path (or DefaultPath when empty), applies environment
// overrides and validates the result. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	llm.ApplyEnv(&cfg.LLM)

	if v := os.Getenv("UNIPREP_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("UNIPREP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("UNIPREP_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("UNIPREP_TRACE"); v != "" {
		cfg.Trace.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("UNIPREP_TRACE_PATH"); v != "" {
		cfg.Trace.Path = v
	}
	if v := os.Getenv("UNIPREP_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation at once.
// The API credential is deliberately not checked here.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a URL", field)
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
