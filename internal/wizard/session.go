package wizard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
	"github.com/alexanderramin/puravida/internal/planner"
)

// Phase is the session-level state around the wizard.
type Phase string

const (
	PhaseWizard  Phase = "wizard"
	PhaseLoading Phase = "loading"
	PhaseResult  Phase = "result"
)

var (
	// ErrBusy is returned when a request is already outstanding.
	ErrBusy = errors.New("an itinerary request is already in progress")

	// ErrNotReady is returned when the session is not in a state that
	// accepts the action.
	ErrNotReady = errors.New("session is not ready for this action")

	// ErrGenerationFailed matches every *GenerationError.
	ErrGenerationFailed = errors.New("generation failed, please try again")
)

// GenerationError is the single user-facing failure of a submission or
// revision. Error() never exposes the cause; Unwrap does, for logging and
// errors.Is against the llm error classes.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string { return ErrGenerationFailed.Error() }

func (e *GenerationError) Unwrap() error { return e.Cause }

func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// Session owns one guest's wizard, the frozen record of the last submission
// and the itinerary it produced.
type Session struct {
	ID string

	planner planner.Planner
	logger  *slog.Logger

	mu        sync.Mutex
	wizard    *Wizard
	phase     Phase
	submitted *domain.Preferences
	itinerary *domain.Itinerary
	epoch     int // bumped by Reset so late results are dropped
}

// NewSession creates a session with a fresh wizard.
func NewSession(p planner.Planner, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		ID:      uuid.New().String(),
		planner: p,
		logger:  logger,
		wizard:  New(),
		phase:   PhaseWizard,
	}
}

// Wizard returns the session's wizard. Its pointer changes on Reset.
func (s *Session) Wizard() *Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Itinerary returns the current itinerary, or nil outside PhaseResult.
func (s *Session) Itinerary() *domain.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary
}

// Submitted returns the frozen record of the last successful submission.
func (s *Session) Submitted() (domain.Preferences, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted == nil {
		return domain.Preferences{}, false
	}
	return s.submitted.Clone(), true
}

// Submit freezes the preferences and requests an itinerary. It must be called
// on StepConfirm. On failure the session returns to the confirm step with the
// preferences intact and a *GenerationError is returned.
func (s *Session) Submit(ctx context.Context) (*domain.Itinerary, error) {
	s.mu.Lock()
	if s.phase == PhaseLoading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if s.phase != PhaseWizard || s.wizard.Step() != StepConfirm {
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	if err := s.wizard.Ready(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	frozen := s.wizard.Snapshot()
	s.phase = PhaseLoading
	epoch := s.epoch
	s.mu.Unlock()

	it, err := s.planner.Generate(llm.WithSessionID(ctx, s.ID), frozen)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil, ErrNotReady
	}
	if err != nil {
		s.phase = PhaseWizard
		s.logFailure(ctx, "submit", err)
		return nil, &GenerationError{Cause: err}
	}
	s.phase = PhaseResult
	s.submitted = &frozen
	s.itinerary = it
	s.logger.InfoContext(ctx, "itinerary generated",
		"session", s.ID,
		"name", it.ItineraryName,
		"days", len(it.Schedule),
	)
	return it, nil
}

// Revise regenerates the current itinerary with feedback. A failed revision
// keeps the current itinerary.
func (s *Session) Revise(ctx context.Context, feedback string) (*domain.Itinerary, error) {
	s.mu.Lock()
	if s.phase == PhaseLoading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if s.phase != PhaseResult || s.itinerary == nil || s.submitted == nil {
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	if strings.TrimSpace(feedback) == "" {
		s.mu.Unlock()
		return nil, planner.ErrEmptyFeedback
	}
	current := *s.itinerary
	prefs := s.submitted.Clone()
	s.phase = PhaseLoading
	epoch := s.epoch
	s.mu.Unlock()

	it, err := s.planner.Revise(llm.WithSessionID(ctx, s.ID), current, feedback, prefs)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil, ErrNotReady
	}
	s.phase = PhaseResult
	if err != nil {
		if errors.Is(err, planner.ErrEmptyFeedback) {
			return nil, err
		}
		s.logFailure(ctx, "revise", err)
		return nil, &GenerationError{Cause: err}
	}
	s.itinerary = it
	return it, nil
}

// Reset discards the itinerary and preferences and returns to StepBasics.
// A request still in flight is left to finish; its result is dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.wizard = New()
	s.phase = PhaseWizard
	s.submitted = nil
	s.itinerary = nil
}

func (s *Session) logFailure(ctx context.Context, op string, err error) {
	s.logger.WarnContext(ctx, "itinerary request failed",
		"session", s.ID,
		"op", op,
		"class", llm.ErrorClass(err),
		"error", err,
	)
}
