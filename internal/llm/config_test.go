package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, name := range credentialEnv {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig_NoTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, 0, cfg.TaskTimeout(TaskRoadmap))
	assert.Equal(t, 0, cfg.TaskTimeout(TaskIdeas))
}

func TestApplyEnv_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("UNIPREP_TIMEOUT_MS", "9000")
	t.Setenv("UNIPREP_IDEAS_TIMEOUT_MS", "60000")

	cfg := envConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskIdeas))
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskStudy))
}

func TestApplyEnv_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("UNIPREP_ROADMAP_TIMEOUT_MS", "not-a-number")

	cfg := envConfig()

	assert.Equal(t, 0, cfg.TaskTimeout(TaskRoadmap))
}

func TestApplyEnv_CredentialPrecedence(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini")
	assert.Equal(t, "gemini", envConfig().APIKey)

	t.Setenv("API_KEY", "legacy")
	assert.Equal(t, "legacy", envConfig().APIKey)

	t.Setenv("UNIPREP_API_KEY", "uniprep")
	assert.Equal(t, "uniprep", envConfig().APIKey)
}

func TestApplyEnv_MissingCredentialIsNotAnError(t *testing.T) {
	clearCredentialEnv(t)
	cfg := envConfig()
	assert.Empty(t, cfg.APIKey)
}

func TestApplyEnv_ModelAndLogCalls(t *testing.T) {
	t.Setenv("UNIPREP_MODEL", "gemini-other")
	t.Setenv("UNIPREP_LOG_CALLS", "true")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	assert.Equal(t, "gemini-other", cfg.Model)
	assert.True(t, cfg.LogCalls)
}

func envConfig() LLMConfig {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}
