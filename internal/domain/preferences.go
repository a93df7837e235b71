package domain

import (
	"fmt"
	"strings"
)

const (
	MinTripDuration     = 1
	MaxTripDuration     = 14
	DefaultTripDuration = 3
)

// Preferences is the guest's travel profile assembled by the wizard.
type Preferences struct {
	GuestName  string
	Direction  Direction
	Duration   int
	Vibes      []Vibe
	Activities []Activity
	Regions    RegionSelection
	Budget     BudgetLevel
	Party      TravelingParty
}

// NewPreferences returns a record holding the documented defaults.
func NewPreferences() *Preferences {
	return &Preferences{
		Direction: DirectionPreWedding,
		Duration:  DefaultTripDuration,
		Regions:   AIDecideRegions(),
		Budget:    BudgetModerate,
		Party:     PartyCouple,
	}
}

// Clone returns a deep copy that shares no slices with p.
func (p *Preferences) Clone() Preferences {
	c := *p
	c.Vibes = append([]Vibe(nil), p.Vibes...)
	c.Activities = append([]Activity(nil), p.Activities...)
	c.Regions = RegionSelection{mode: p.Regions.mode, regions: p.Regions.Regions()}
	return c
}

// TrimmedName returns the guest name without surrounding whitespace.
func (p *Preferences) TrimmedName() string {
	return strings.TrimSpace(p.GuestName)
}

func (p *Preferences) SetGuestName(name string) {
	p.GuestName = name
}

func (p *Preferences) SetDirection(d Direction) error {
	if !Contains(DirectionOptions, d) {
		return fmt.Errorf("unknown travel direction %q", d)
	}
	p.Direction = d
	return nil
}

// SetDuration clamps days into [MinTripDuration, MaxTripDuration].
func (p *Preferences) SetDuration(days int) {
	p.Duration = ClampDuration(days)
}

func (p *Preferences) SetBudget(b BudgetLevel) error {
	if !Contains(BudgetOptions, b) {
		return fmt.Errorf("unknown budget level %q", b)
	}
	p.Budget = b
	return nil
}

func (p *Preferences) SetParty(party TravelingParty) error {
	if !Contains(PartyOptions, party) {
		return fmt.Errorf("unknown traveling party %q", party)
	}
	p.Party = party
	return nil
}

func (p *Preferences) ToggleVibe(v Vibe) error {
	if !Contains(VibeOptions, v) {
		return fmt.Errorf("unknown vibe %q", v)
	}
	p.Vibes = toggle(p.Vibes, v)
	return nil
}

func (p *Preferences) ToggleActivity(a Activity) error {
	if !Contains(ActivityOptions, a) {
		return fmt.Errorf("unknown activity %q", a)
	}
	p.Activities = toggle(p.Activities, a)
	return nil
}

func (p *Preferences) ToggleRegion(r Region) error {
	if !Contains(RegionOptions, r) {
		return fmt.Errorf("unknown region %q", r)
	}
	p.Regions = p.Regions.Toggle(r)
	return nil
}

// HasPreferenceSignal reports whether the guest expressed anything on the
// experience step. The AI_DECIDE sentinel counts as a signal.
func (p *Preferences) HasPreferenceSignal() bool {
	return !p.Regions.IsEmpty() || len(p.Vibes) > 0 || len(p.Activities) > 0
}

func ClampDuration(days int) int {
	switch {
	case days < MinTripDuration:
		return MinTripDuration
	case days > MaxTripDuration:
		return MaxTripDuration
	default:
		return days
	}
}

// toggle removes v when present and appends it otherwise, keeping
// selection order.
func toggle[T comparable](set []T, v T) []T {
	for i, existing := range set {
		if existing == v {
			out := make([]T, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	return append(append(make([]T, 0, len(set)+1), set...), v)
}

// JoinValues joins string-like values with ", ".
func JoinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
