package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_GeminiWithoutCredential(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskItinerary))
	assert.InDelta(t, 0.7, cfg.Tasks[TaskItinerary].Temperature, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_TaskTimeoutOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks[TaskRevision] = TaskConfig{Temperature: 0.7, TimeoutMs: 5000}

	assert.Equal(t, 5000, cfg.TaskTimeout(TaskRevision))
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskItinerary))
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	cfg = DefaultConfig()
	cfg.Model = ""
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

	cfg = DefaultConfig()
	cfg.TimeoutMs = 0
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)
}

func TestResolveCredential_FirstNonEmptyWins(t *testing.T) {
	env := map[string]string{
		"PURAVIDA_API_KEY": "",
		"GEMINI_API_KEY":   "  gem-key  ",
		"API_KEY":          "generic-key",
	}
	key, source := ResolveCredential(func(k string) string { return env[k] }, DefaultCredentialSources)

	assert.Equal(t, "gem-key", key)
	assert.Equal(t, "GEMINI_API_KEY", source)

	env["PURAVIDA_API_KEY"] = "app-key"
	key, source = ResolveCredential(func(k string) string { return env[k] }, DefaultCredentialSources)
	assert.Equal(t, "app-key", key)
	assert.Equal(t, "PURAVIDA_API_KEY", source)
}

func TestResolveCredential_NoneFound(t *testing.T) {
	key, source := ResolveCredential(func(string) string { return "" }, DefaultCredentialSources)
	assert.Empty(t, key)
	assert.Empty(t, source)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "NONE", MaskKey(""))
	assert.Equal(t, "****", MaskKey("abc"))
	assert.Equal(t, "AIza...", MaskKey("AIzaSyExample"))
}

func TestErrorClass(t *testing.T) {
	assert.Equal(t, "configuration", ErrorClass(ErrMissingCredential))
	assert.Equal(t, "provider", ErrorClass(ErrInvalidOutput))
	assert.Equal(t, "provider", ErrorClass(ErrEmptyResponse))
	assert.Equal(t, "transport", ErrorClass(ErrTimeout))
	assert.Equal(t, "transport", ErrorClass(ErrUnavailable))
	assert.Equal(t, "unknown", ErrorClass(assert.AnError))
}
