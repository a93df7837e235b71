package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/puravida/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CallStats aggregates the call log.
type CallStats struct {
	Total        int
	Failed       int
	AvgLatencyMs int64
}

type CallLogRepo interface {
	Create(ctx context.Context, c *domain.ProviderCall) error
	GetByID(ctx context.Context, id string) (*domain.ProviderCall, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ProviderCall, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.ProviderCall, error)
	Stats(ctx context.Context) (CallStats, error)
	// Prune keeps the newest keep rows and returns how many were deleted.
	Prune(ctx context.Context, keep int) (int64, error)
}
