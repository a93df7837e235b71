package llm

import (
	"context"
	"log/slog"
)

// CallEvent records metadata about a single provider invocation.
type CallEvent struct {
	SessionID  string
	Task       TaskType
	Provider   Provider
	Model      string
	LatencyMs  int64
	Success    bool
	ErrorCode  string
	ErrorClass string
}

// Observer receives events about provider calls for logging and auditing.
type Observer interface {
	OnCallComplete(ctx context.Context, event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(ctx context.Context, event CallEvent) {
	level := slog.LevelInfo
	status := "ok"
	if !event.Success {
		level = slog.LevelWarn
		status = "err:" + event.ErrorCode
	}
	o.logger.Log(ctx, level, "llm_call",
		"session", event.SessionID,
		"task", string(event.Task),
		"provider", string(event.Provider),
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"status", status,
	)
}

// MultiObserver fans each event out to every wrapped observer.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(ctx context.Context, event CallEvent) {
	for _, o := range m {
		o.OnCallComplete(ctx, event)
	}
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(context.Context, CallEvent) {}

type sessionKey struct{}

// WithSessionID tags ctx so call events can be correlated with a session.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionIDFrom returns the session tag set by WithSessionID, or "".
func SessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
