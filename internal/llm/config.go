package llm

import (
	"fmt"
	"net/http"
	"strings"
)

// Provider selects the model backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskItinerary TaskType = "itinerary"
	TaskRevision  TaskType = "revision"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// DefaultCredentialSources is the lookup order for the provider API key:
// app-specific, then the provider SDK's own variable, then a generic name.
var DefaultCredentialSources = []string{"PURAVIDA_API_KEY", "GEMINI_API_KEY", "API_KEY"}

// Config holds all configuration for the LLM subsystem. It is populated once
// at process start and passed to the client; nothing below reads the
// environment.
type Config struct {
	Provider Provider
	Model    string
	// Endpoint is the Ollama base URL, or an override of the Gemini API base
	// URL when non-empty.
	Endpoint  string
	APIKey    string
	KeySource string // name of the source that supplied APIKey
	TimeoutMs int
	LogCalls  bool
	Tasks     map[TaskType]TaskConfig

	// HTTPClient is used for provider calls when non-nil.
	HTTPClient *http.Client
}

// DefaultConfig returns a Config with sensible defaults and no credential.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderGemini,
		Model:     "gemini-2.5-flash",
		TimeoutMs: 45000,
		Tasks: map[TaskType]TaskConfig{
			TaskItinerary: {Temperature: 0.7, MaxTokens: 8192},
			TaskRevision:  {Temperature: 0.7, MaxTokens: 8192},
		},
	}
}

// Ollama defaults, applied when the provider is switched to Ollama without
// naming a model or endpoint.
const (
	DefaultOllamaModel    = "llama3.2"
	DefaultOllamaEndpoint = "http://localhost:11434"
)

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// Validate rejects configurations no client can be built from. A missing
// credential is not an error here; it surfaces as ErrMissingCredential on the
// first Generate call.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOllama:
	default:
		return fmt.Errorf("%w %q", ErrUnknownProvider, c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", ErrConfiguration)
	}
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrConfiguration)
	}
	return nil
}

// ResolveCredential checks sources in order through lookup and returns the
// first non-empty value with the name of the source that held it.
func ResolveCredential(lookup func(string) string, sources []string) (key, source string) {
	for _, name := range sources {
		if v := strings.TrimSpace(lookup(name)); v != "" {
			return v, name
		}
	}
	return "", ""
}

// MaskKey renders a credential safe for logs.
func MaskKey(key string) string {
	if key == "" {
		return "NONE"
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "..."
}
