package domain

import "time"

// ProviderCall is one row of the provider call log: metadata about a single
// generate or revise request. Prompts and responses are never stored.
type ProviderCall struct {
	ID         string
	SessionID  string
	Task       string
	Provider   string
	Model      string
	LatencyMs  int64
	Success    bool
	ErrorCode  string
	ErrorClass string
	CreatedAt  time.Time
}
