package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
	"github.com/alexanderramin/puravida/internal/domain"
)

// puravidaHuhTheme returns a huh theme using the tropical palette.
func puravidaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorSunset).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorSunset)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorSunset)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorJungle)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorJungle).SetString("[✓] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorMuted).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorSand)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorSand).Background(formatter.ColorSunset).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorMuted).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorSunset)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorSunset)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorSand)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorCoral)

	// Blurred fields fade to the muted color.
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorMuted)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(puravidaHuhTheme()).WithShowHelp(false)
}

// huhOptions converts catalog entries into huh options keyed by value.
func huhOptions[T ~string](options []domain.Option[T]) []huh.Option[T] {
	out := make([]huh.Option[T], len(options))
	for i, o := range options {
		label := o.Label
		if o.Emoji != "" {
			label = o.Emoji + " " + label
		}
		if o.Description != "" {
			label += " " + formatter.Dim("("+o.Description+")")
		}
		out[i] = huh.NewOption(label, o.Value)
	}
	return out
}

// validateName rejects blank guest names.
func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("please tell us your name")
	}
	return nil
}

// validateDays accepts a whole number of days; out-of-range values are
// clamped when applied.
func validateDays(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number of days")
	}
	return nil
}

// basicsInputs holds the bound values of the first wizard step.
type basicsInputs struct {
	name      string
	direction domain.Direction
	days      string
}

func newBasicsInputs(p *domain.Preferences) *basicsInputs {
	return &basicsInputs{name: p.GuestName, direction: p.Direction, days: strconv.Itoa(p.Duration)}
}

func (in *basicsInputs) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewNote().
				Title(formatter.RenderSteps(1, 3, "The Basics")).
				Description("Let's plan your Costa Rica adventure around the wedding."),
			huh.NewInput().
				Title("What's your name?").
				Placeholder("Jane Doe").
				Validate(validateName).
				Value(&in.name),
			huh.NewSelect[domain.Direction]().
				Title("When are you traveling?").
				Options(huhOptions(domain.DirectionOptions)...).
				Value(&in.direction),
			huh.NewInput().
				Title("How many days? (excluding wedding days)").
				Description(fmt.Sprintf("Between %d and %d.", domain.MinTripDuration, domain.MaxTripDuration)).
				Validate(validateDays).
				Value(&in.days),
		),
	)
}

func (in *basicsInputs) apply(p *domain.Preferences) error {
	p.SetGuestName(in.name)
	if err := p.SetDirection(in.direction); err != nil {
		return err
	}
	days, err := strconv.Atoi(strings.TrimSpace(in.days))
	if err != nil {
		return fmt.Errorf("invalid trip length %q", in.days)
	}
	p.SetDuration(days)
	return nil
}

// experienceInputs holds the bound values of the second wizard step.
type experienceInputs struct {
	vibes      []domain.Vibe
	activities []domain.Activity
	regions    []domain.Region
	budget     domain.BudgetLevel
	party      domain.TravelingParty
	proceed    bool
}

func newExperienceInputs(p *domain.Preferences) *experienceInputs {
	return &experienceInputs{
		vibes:      append([]domain.Vibe(nil), p.Vibes...),
		activities: append([]domain.Activity(nil), p.Activities...),
		regions:    p.Regions.Values(),
		budget:     p.Budget,
		party:      p.Party,
		proceed:    true,
	}
}

func (in *experienceInputs) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewNote().
				Title(formatter.RenderSteps(2, 3, "The Experience")),
			huh.NewMultiSelect[domain.Vibe]().
				Title("What vibe are you looking for?").
				Options(huhOptions(domain.VibeOptions)...).
				Value(&in.vibes),
			huh.NewMultiSelect[domain.Activity]().
				Title("Any specific activities?").
				Options(huhOptions(domain.ActivityOptions)...).
				Height(10).
				Value(&in.activities),
		),
		huh.NewGroup(
			huh.NewMultiSelect[domain.Region]().
				Title("Where do you want to go?").
				Description("Pick Surprise Me and we will choose based on your activities.").
				Options(huhOptions(domain.RegionOptions)...).
				Value(&in.regions),
			huh.NewSelect[domain.BudgetLevel]().
				Title("Budget").
				Options(huhOptions(domain.BudgetOptions)...).
				Value(&in.budget),
			huh.NewSelect[domain.TravelingParty]().
				Title("Who's traveling?").
				Options(huhOptions(domain.PartyOptions)...).
				Value(&in.party),
			huh.NewConfirm().
				Title("Ready to review?").
				Affirmative("Continue").
				Negative("Back").
				Value(&in.proceed),
		),
	)
}

// apply replays the selections onto p as toggles so every intermediate
// state obeys the region rules.
func (in *experienceInputs) apply(p *domain.Preferences) error {
	for _, v := range symmetricDiff(p.Vibes, in.vibes) {
		if err := p.ToggleVibe(v); err != nil {
			return err
		}
	}
	for _, a := range symmetricDiff(p.Activities, in.activities) {
		if err := p.ToggleActivity(a); err != nil {
			return err
		}
	}
	p.Regions = applyRegionPicks(p.Regions, in.regions)
	if err := p.SetBudget(in.budget); err != nil {
		return err
	}
	return p.SetParty(in.party)
}

// symmetricDiff returns the values to toggle to turn have into want:
// removals in have order, then additions in want order.
func symmetricDiff[T comparable](have, want []T) []T {
	var out []T
	for _, v := range have {
		if !slices.Contains(want, v) {
			out = append(out, v)
		}
	}
	for _, v := range want {
		if !slices.Contains(have, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

type confirmChoice string

const (
	confirmGenerate confirmChoice = "generate"
	confirmBack     confirmChoice = "back"
	confirmReset    confirmChoice = "reset"
)

func confirmForm(p domain.Preferences, choice *confirmChoice) *huh.Form {
	*choice = confirmGenerate
	return newForm(
		huh.NewGroup(
			huh.NewNote().
				Title(formatter.RenderSteps(3, 3, "Confirm")).
				Description(formatter.FormatPreferences(p)),
			huh.NewSelect[confirmChoice]().
				Options(
					huh.NewOption("Generate my itinerary", confirmGenerate),
					huh.NewOption("Back", confirmBack),
					huh.NewOption("Start over", confirmReset),
				).
				Value(choice),
		),
	)
}

func feedbackForm(feedback *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewText().
				Title("What would you like to change?").
				Placeholder("e.g. more beach time, skip the zip lining").
				Value(feedback),
		),
	)
}
