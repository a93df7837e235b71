package wizard

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/puravida/internal/domain"
)

// Step is a page of the preference wizard.
type Step int

const (
	StepBasics Step = iota + 1
	StepExperience
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepExperience:
		return "experience"
	case StepConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Number is the 1-based position shown to guests ("Step 2 of 3").
func (s Step) Number() int { return int(s) }

// StepCount is the number of wizard steps.
const StepCount = 3

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("wizard validation failed")

// ErrLastStep is returned by Next on the confirm step; leaving it requires
// submission.
var ErrLastStep = errors.New("already on the last wizard step")

type ValidationCode string

const (
	CodeGuestNameRequired  ValidationCode = "GUEST_NAME_REQUIRED"
	CodePreferenceRequired ValidationCode = "PREFERENCE_REQUIRED"
)

// ValidationError reports a step gate that is not satisfied.
type ValidationError struct {
	Step    Step
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Wizard is the three-step preference collection state machine. It owns the
// session's preference record; gates run on Next and navigation backwards
// never clears data.
type Wizard struct {
	step  Step
	prefs *domain.Preferences
}

// New returns a wizard on StepBasics with default preferences.
func New() *Wizard {
	return &Wizard{step: StepBasics, prefs: domain.NewPreferences()}
}

func (w *Wizard) Step() Step { return w.step }

// Preferences returns the live record for the current step's inputs to
// mutate.
func (w *Wizard) Preferences() *domain.Preferences { return w.prefs }

// Snapshot returns a deep copy of the current preferences.
func (w *Wizard) Snapshot() domain.Preferences { return w.prefs.Clone() }

// Check evaluates the gate for leaving step s forwards.
func (w *Wizard) Check(s Step) error {
	switch s {
	case StepBasics:
		if w.prefs.TrimmedName() == "" {
			return &ValidationError{Step: s, Code: CodeGuestNameRequired, Message: "guest name is required"}
		}
	case StepExperience:
		if !w.prefs.HasPreferenceSignal() {
			return &ValidationError{Step: s, Code: CodePreferenceRequired, Message: "choose at least one region, vibe or activity"}
		}
	}
	return nil
}

// Ready reports whether every gate up to the confirm step passes. Submission
// must not bypass a gate even if the record was edited after navigating.
func (w *Wizard) Ready() error {
	for s := StepBasics; s < StepConfirm; s++ {
		if err := w.Check(s); err != nil {
			return err
		}
	}
	return nil
}

// Next advances one step when the current step's gate passes.
func (w *Wizard) Next() error {
	if w.step == StepConfirm {
		return ErrLastStep
	}
	if err := w.Check(w.step); err != nil {
		return err
	}
	w.step++
	return nil
}

// Back moves one step back unconditionally. It is a no-op on StepBasics.
func (w *Wizard) Back() {
	if w.step > StepBasics {
		w.step--
	}
}

// Reset discards the preference record and returns to StepBasics.
func (w *Wizard) Reset() {
	w.step = StepBasics
	w.prefs = domain.NewPreferences()
}
