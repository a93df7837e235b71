package cli

import (
	"slices"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/puravida/internal/domain"
)

// preferenceFlags mirrors the wizard inputs for non-interactive use.
type preferenceFlags struct {
	name       string
	direction  string
	days       int
	vibes      []string
	activities []string
	regions    []string
	budget     string
	party      string
}

func (f *preferenceFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "guest name")
	fs.StringVar(&f.direction, "direction", "pre", "travel direction: pre or post wedding")
	fs.IntVar(&f.days, "days", domain.DefaultTripDuration, "trip length in days, excluding wedding days (1-14)")
	fs.StringArrayVar(&f.vibes, "vibe", nil, "vibe to include (repeatable)")
	fs.StringArrayVar(&f.activities, "activity", nil, "activity to include (repeatable)")
	fs.StringArrayVar(&f.regions, "region", nil, "region to visit, or AI_DECIDE (repeatable)")
	fs.StringVar(&f.budget, "budget", string(domain.BudgetModerate), "budget level")
	fs.StringVar(&f.party, "party", string(domain.PartyCouple), "traveling party")
}

// changed reports whether any preference flag was given explicitly.
func (f *preferenceFlags) changed(fs *pflag.FlagSet) bool {
	for _, name := range []string{"name", "direction", "days", "vibe", "activity", "region", "budget", "party"} {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// apply writes the flag values into p. Values match catalog values or
// labels case-insensitively; repeated values are kept once.
func (f *preferenceFlags) apply(p *domain.Preferences) error {
	p.SetGuestName(f.name)

	dir, err := domain.ParseDirection(f.direction)
	if err != nil {
		return err
	}
	if err := p.SetDirection(dir); err != nil {
		return err
	}
	p.SetDuration(f.days)

	for _, s := range f.vibes {
		v, err := domain.ParseVibe(s)
		if err != nil {
			return err
		}
		if !slices.Contains(p.Vibes, v) {
			_ = p.ToggleVibe(v)
		}
	}
	for _, s := range f.activities {
		a, err := domain.ParseActivity(s)
		if err != nil {
			return err
		}
		if !slices.Contains(p.Activities, a) {
			_ = p.ToggleActivity(a)
		}
	}

	if len(f.regions) > 0 {
		picked := make([]domain.Region, 0, len(f.regions))
		for _, s := range f.regions {
			r, err := domain.ParseRegion(s)
			if err != nil {
				return err
			}
			picked = append(picked, r)
		}
		p.Regions = applyRegionPicks(p.Regions, picked)
	}

	budget, err := domain.ParseBudget(f.budget)
	if err != nil {
		return err
	}
	if err := p.SetBudget(budget); err != nil {
		return err
	}
	party, err := domain.ParseParty(f.party)
	if err != nil {
		return err
	}
	return p.SetParty(party)
}

// applyRegionPicks turns a multi-select result into toggles against sel:
// removals first, then additions, with a newly picked sentinel applied last
// so it always wins. Unticking the sentinel on its own changes nothing.
func applyRegionPicks(sel domain.RegionSelection, picked []domain.Region) domain.RegionSelection {
	current := sel.Values()
	for _, r := range current {
		if r != domain.RegionAIDecide && !slices.Contains(picked, r) {
			sel = sel.Toggle(r)
		}
	}

	sentinel := false
	seen := make(map[domain.Region]bool, len(picked))
	for _, r := range picked {
		if seen[r] || slices.Contains(current, r) {
			continue
		}
		seen[r] = true
		if r == domain.RegionAIDecide {
			sentinel = true
			continue
		}
		sel = sel.Toggle(r)
	}
	if sentinel {
		sel = sel.Toggle(domain.RegionAIDecide)
	}
	return sel
}
