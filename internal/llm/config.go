package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskRoadmap TaskType = "roadmap"
	TaskIdeas   TaskType = "ideas"
	TaskStudy   TaskType = "study"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// TaskConfig holds per-task LLM parameters. Nil or zero values leave the
// model's own defaults in place.
type TaskConfig struct {
	Temperature *float64 `yaml:"temperature" validate:"omitempty,gte=0,lte=2"`
	MaxTokens   int      `yaml:"max_tokens" validate:"gte=0"`
	TimeoutMs   int      `yaml:"timeout_ms" validate:"gte=0"` // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	APIKey    string                  `yaml:"api_key"`
	BaseURL   string                  `yaml:"base_url" validate:"omitempty,url"`
	Model     string                  `yaml:"model" validate:"required"`
	TimeoutMs int                     `yaml:"timeout_ms" validate:"gte=0"`
	LogCalls  bool                    `yaml:"log_calls"`
	Tasks     map[TaskType]TaskConfig `yaml:"tasks" validate:"dive"`
}

// DefaultConfig returns an LLMConfig with sensible defaults. No timeout is
// applied unless one is configured.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Model: DefaultModel,
		Tasks: map[TaskType]TaskConfig{
			TaskRoadmap: {},
			TaskIdeas:   {},
			TaskStudy:   {},
		},
	}
}

// credentialEnv lists the credential variables in precedence order.
var credentialEnv = []string{"UNIPREP_API_KEY", "API_KEY", "GEMINI_API_KEY"}

// ApplyEnv overlays environment variables onto cfg. Unparseable values are
// ignored.
func ApplyEnv(cfg *LLMConfig) {
	for _, name := range credentialEnv {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			cfg.APIKey = v
			break
		}
	}
	if v := os.Getenv("UNIPREP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("UNIPREP_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("UNIPREP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("UNIPREP_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(cfg, TaskRoadmap, "UNIPREP_ROADMAP_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskIdeas, "UNIPREP_IDEAS_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskStudy, "UNIPREP_STUDY_TIMEOUT_MS")
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
// Zero means no timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	if cfg.Tasks == nil {
		cfg.Tasks = map[TaskType]TaskConfig{}
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
