package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/wizard"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		prefs      preferenceFlags
		exportPath string
		feedback   string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip around the wedding",
		Long: `Walks through the three-step wizard and generates an itinerary.

Runs the interactive wizard on a terminal. Pass --name (and any other
preference flag) or pipe stdin to run without prompts.`,
		Example: `  puravida plan
  puravida plan --name "Jane Doe" --days 5 --activity Surfing
  puravida plan --name Ana --region Monteverde --region "La Fortuna" --export trip.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			session := app.newSession()

			var (
				it  *domain.Itinerary
				err error
			)
			if app.interactive() && !prefs.changed(cmd.Flags()) {
				it, err = newPlanRunner(app, session).run(ctx)
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
			} else {
				it, err = runBatchPlan(ctx, app, session, &prefs, feedback)
			}
			if err != nil || it == nil {
				return err
			}

			if exportPath != "" {
				if err := exportItinerary(exportPath, it); err != nil {
					return err
				}
				fmt.Fprintf(app.out(), "%s %s\n", formatter.StyleJungle.Render("✔"), "Saved itinerary to "+exportPath)
			}
			return nil
		},
	}

	prefs.register(cmd.Flags())
	cmd.Flags().StringVar(&exportPath, "export", "", "write the itinerary to FILE (.json or .yaml)")
	cmd.Flags().StringVar(&feedback, "feedback", "", "request one round of changes after generating")
	return cmd
}

// runBatchPlan drives the wizard from flags and prints the itinerary.
func runBatchPlan(ctx context.Context, app *App, session *wizard.Session, prefs *preferenceFlags, feedback string) (*domain.Itinerary, error) {
	w := session.Wizard()
	if err := prefs.apply(w.Preferences()); err != nil {
		return nil, err
	}
	for w.Step() != wizard.StepConfirm {
		if err := w.Next(); err != nil {
			return nil, err
		}
	}

	it, err := session.Submit(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(feedback) != "" {
		if it, err = session.Revise(ctx, feedback); err != nil {
			return nil, err
		}
	}

	fmt.Fprint(app.out(), formatter.FormatItinerary(it, sessionNotes(session, it), 0))
	return it, nil
}

func sessionNotes(session *wizard.Session, it *domain.Itinerary) []string {
	submitted, ok := session.Submitted()
	if !ok {
		return nil
	}
	return it.ConsistencyNotes(submitted)
}

// planRunner is the interactive wizard: huh forms per step, a spinner while
// the provider works, then the result view.
type planRunner struct {
	app     *App
	session *wizard.Session

	runForm   func(*huh.Form) error
	runResult func(*domain.Itinerary, []string) (resultAction, error)
}

func newPlanRunner(app *App, session *wizard.Session) *planRunner {
	r := &planRunner{app: app, session: session}
	r.runForm = func(f *huh.Form) error {
		return f.WithInput(app.in()).WithOutput(app.out()).Run()
	}
	r.runResult = func(it *domain.Itinerary, notes []string) (resultAction, error) {
		return runResultView(app.in(), app.out(), it, notes)
	}
	return r
}

func (r *planRunner) run(ctx context.Context) (*domain.Itinerary, error) {
	it, err := r.collect(ctx)
	if err != nil {
		return nil, err
	}

	for {
		action, err := r.runResult(it, sessionNotes(r.session, it))
		if err != nil {
			return it, err
		}
		switch action {
		case actionQuit:
			return it, nil
		case actionReset:
			r.session.Reset()
			if it, err = r.collect(ctx); err != nil {
				return nil, err
			}
		case actionRevise:
			revised, err := r.revise(ctx)
			if err != nil {
				return it, err
			}
			if revised != nil {
				it = revised
			}
		}
	}
}

// collect walks the wizard until a submission succeeds.
func (r *planRunner) collect(ctx context.Context) (*domain.Itinerary, error) {
	for {
		w := r.session.Wizard()
		switch w.Step() {
		case wizard.StepBasics:
			in := newBasicsInputs(w.Preferences())
			if err := r.runForm(in.form()); err != nil {
				return nil, err
			}
			if err := in.apply(w.Preferences()); err != nil {
				return nil, err
			}
			r.warnIfInvalid(w.Next())

		case wizard.StepExperience:
			in := newExperienceInputs(w.Preferences())
			if err := r.runForm(in.form()); err != nil {
				return nil, err
			}
			if err := in.apply(w.Preferences()); err != nil {
				return nil, err
			}
			if !in.proceed {
				w.Back()
				continue
			}
			r.warnIfInvalid(w.Next())

		case wizard.StepConfirm:
			var choice confirmChoice
			if err := r.runForm(confirmForm(w.Snapshot(), &choice)); err != nil {
				return nil, err
			}
			switch choice {
			case confirmBack:
				w.Back()
			case confirmReset:
				r.session.Reset()
			case confirmGenerate:
				stop := formatter.StartSpinner(r.app.out(), "Crafting your Pura Vida itinerary...")
				it, err := r.session.Submit(ctx)
				stop()
				if err == nil {
					return it, nil
				}
				if !r.recoverable(err) {
					return nil, err
				}
			}
		}
	}
}

// revise asks for feedback and regenerates. It returns nil when the guest
// gave no feedback or the request failed; the current itinerary stays.
func (r *planRunner) revise(ctx context.Context) (*domain.Itinerary, error) {
	var feedback string
	if err := r.runForm(feedbackForm(&feedback)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	if strings.TrimSpace(feedback) == "" {
		return nil, nil
	}

	stop := formatter.StartSpinner(r.app.out(), "Reworking your itinerary...")
	it, err := r.session.Revise(ctx, feedback)
	stop()
	if err != nil {
		if r.recoverable(err) {
			return nil, nil
		}
		return nil, err
	}
	return it, nil
}

// recoverable prints the guest-facing message for err and reports whether
// the wizard can carry on.
func (r *planRunner) recoverable(err error) bool {
	switch {
	case errors.Is(err, wizard.ErrGenerationFailed), errors.Is(err, wizard.ErrValidation):
		fmt.Fprintf(r.app.out(), "%s %s\n\n", formatter.StyleCoral.Render("✖"), err)
		return true
	default:
		return false
	}
}

func (r *planRunner) warnIfInvalid(err error) {
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(r.app.out(), "%s %s\n\n", formatter.StyleSun.Render("!"), verr.Message)
	}
}
