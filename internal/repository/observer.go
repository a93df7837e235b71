package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
)

// CallLogObserver records provider call events in the call log. Write
// failures are logged and never reach the caller of the provider.
type CallLogObserver struct {
	repo   CallLogRepo
	logger *slog.Logger
	now    func() time.Time
}

// NewCallLogObserver creates an llm.Observer backed by repo.
func NewCallLogObserver(repo CallLogRepo, logger *slog.Logger) *CallLogObserver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CallLogObserver{repo: repo, logger: logger, now: time.Now}
}

var _ llm.Observer = (*CallLogObserver)(nil)

func (o *CallLogObserver) OnCallComplete(ctx context.Context, event llm.CallEvent) {
	call := &domain.ProviderCall{
		ID:         uuid.New().String(),
		SessionID:  event.SessionID,
		Task:       string(event.Task),
		Provider:   string(event.Provider),
		Model:      event.Model,
		LatencyMs:  event.LatencyMs,
		Success:    event.Success,
		ErrorCode:  event.ErrorCode,
		ErrorClass: event.ErrorClass,
		CreatedAt:  o.now().UTC(),
	}
	if err := o.repo.Create(ctx, call); err != nil {
		o.logger.WarnContext(ctx, "call log write failed", "error", err)
	}
}
