package llm

import (
	"context"
	"fmt"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Schema       *Schema  // nil requests free text
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
// Generate makes exactly one provider call; callers own any retry policy.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether a call could plausibly succeed right now.
	Available(ctx context.Context) bool
}

// NewClient builds the client for cfg.Provider.
func NewClient(cfg Config, observer Observer) (LLMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	case ProviderGemini:
		return NewGeminiClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownProvider, cfg.Provider)
	}
}

// callParams resolves per-task defaults against request overrides.
type callParams struct {
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

func resolveParams(cfg Config, req GenerateRequest) callParams {
	taskCfg := cfg.Tasks[req.Task]
	p := callParams{
		temperature: taskCfg.Temperature,
		maxTokens:   taskCfg.MaxTokens,
		timeout:     time.Duration(cfg.TaskTimeout(req.Task)) * time.Millisecond,
	}
	if req.Temperature != nil {
		p.temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		p.maxTokens = *req.MaxTokens
	}
	return p
}

func notify(ctx context.Context, observer Observer, cfg Config, task TaskType, start time.Time, err error) int64 {
	latency := time.Since(start).Milliseconds()
	event := CallEvent{
		SessionID: SessionIDFrom(ctx),
		Task:      task,
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	}
	if err != nil {
		event.ErrorClass = ErrorClass(err)
	}
	// Observers may write to storage after the call's deadline has passed.
	observer.OnCallComplete(context.WithoutCancel(ctx), event)
	return latency
}
