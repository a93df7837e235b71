package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
)

// ErrEmptyFeedback is returned by Revise when the guest gave no feedback.
var ErrEmptyFeedback = errors.New("revision feedback is empty")

// Planner turns preference records into itineraries via a language model.
// Each call makes exactly one provider request; failures are never retried.
type Planner interface {
	// Generate builds an itinerary for a frozen preference record.
	Generate(ctx context.Context, prefs domain.Preferences) (*domain.Itinerary, error)

	// Revise regenerates current with the guest's feedback applied.
	Revise(ctx context.Context, current domain.Itinerary, feedback string, prefs domain.Preferences) (*domain.Itinerary, error)
}

type itineraryPlanner struct {
	client  llm.LLMClient
	wedding Wedding
	logger  *slog.Logger
}

// NewPlanner creates a Planner backed by client.
func NewPlanner(client llm.LLMClient, wedding Wedding, logger *slog.Logger) Planner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &itineraryPlanner{client: client, wedding: wedding, logger: logger}
}

func (s *itineraryPlanner) Generate(ctx context.Context, prefs domain.Preferences) (*domain.Itinerary, error) {
	req := BuildItineraryRequest(prefs, s.wedding)
	s.logger.DebugContext(ctx, "itinerary request built",
		"route", string(req.Routing.Mode),
		"regions", domain.JoinValues(req.Routing.Regions),
		"excludes_la_fortuna", req.Routing.ExcludesLaFortuna(),
	)
	it, err := s.call(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating itinerary: %w", err)
	}
	s.logNotes(ctx, it, prefs)
	return it, nil
}

func (s *itineraryPlanner) Revise(ctx context.Context, current domain.Itinerary, feedback string, prefs domain.Preferences) (*domain.Itinerary, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, ErrEmptyFeedback
	}
	it, err := s.call(ctx, BuildRevisionRequest(current, feedback, prefs, s.wedding))
	if err != nil {
		return nil, fmt.Errorf("revising itinerary: %w", err)
	}
	s.logNotes(ctx, it, prefs)
	return it, nil
}

func (s *itineraryPlanner) call(ctx context.Context, req Request) (*domain.Itinerary, error) {
	resp, err := s.client.Generate(ctx, req.LLM())
	if err != nil {
		return nil, err
	}
	it, err := llm.ExtractJSON[domain.Itinerary](resp.Text, req.Schema, domain.Itinerary.Validate)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *itineraryPlanner) logNotes(ctx context.Context, it *domain.Itinerary, prefs domain.Preferences) {
	for _, note := range it.ConsistencyNotes(prefs) {
		s.logger.InfoContext(ctx, "itinerary consistency", "note", note)
	}
}
