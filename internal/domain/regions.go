package domain

import "strings"

// RegionMode tags which variant a RegionSelection holds.
type RegionMode int

const (
	// RegionModeAIDecide means the guest explicitly asked the planner to choose.
	RegionModeAIDecide RegionMode = iota
	// RegionModeConcrete holds at least one concrete region.
	RegionModeConcrete
	// RegionModeEmpty is reached by deselecting every concrete region.
	RegionModeEmpty
)

// RegionSelection is the guest's region choice. It is a value type: Toggle
// returns a new selection and never mutates the receiver, so the sentinel and
// a concrete region can't coexist.
type RegionSelection struct {
	mode    RegionMode
	regions []Region
}

// AIDecideRegions returns the default "Surprise Me" selection.
func AIDecideRegions() RegionSelection {
	return RegionSelection{mode: RegionModeAIDecide}
}

// ConcreteRegions builds a selection by toggling each region in order from an
// empty selection. Duplicates cancel out; the sentinel resets to AIDecide.
func ConcreteRegions(regions ...Region) RegionSelection {
	sel := RegionSelection{mode: RegionModeEmpty}
	for _, r := range regions {
		sel = sel.Toggle(r)
	}
	return sel
}

// Toggle applies one click on a region option.
//
// Selecting the sentinel always yields AIDecide. Selecting a concrete region
// clears the sentinel and then flips that region's membership; removing the
// last concrete region yields Empty rather than falling back to AIDecide.
func (s RegionSelection) Toggle(r Region) RegionSelection {
	if r == RegionAIDecide {
		return AIDecideRegions()
	}

	var next []Region
	found := false
	if s.mode == RegionModeConcrete {
		for _, existing := range s.regions {
			if existing == r {
				found = true
				continue
			}
			next = append(next, existing)
		}
	}
	if !found {
		next = append(next, r)
	}
	if len(next) == 0 {
		return RegionSelection{mode: RegionModeEmpty}
	}
	return RegionSelection{mode: RegionModeConcrete, regions: next}
}

func (s RegionSelection) Mode() RegionMode { return s.mode }

// Regions returns a copy of the concrete regions in selection order.
func (s RegionSelection) Regions() []Region {
	if s.mode != RegionModeConcrete {
		return nil
	}
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// IsEmpty reports whether nothing at all is selected (not even the sentinel).
func (s RegionSelection) IsEmpty() bool { return s.mode == RegionModeEmpty }

// AIDecides reports whether the planner picks the region: either the sentinel
// was chosen or every concrete region was deselected.
func (s RegionSelection) AIDecides() bool { return s.mode != RegionModeConcrete }

// Has reports whether r is part of the selection. The sentinel is reported
// only in AIDecide mode.
func (s RegionSelection) Has(r Region) bool {
	if r == RegionAIDecide {
		return s.mode == RegionModeAIDecide
	}
	for _, existing := range s.regions {
		if existing == r {
			return true
		}
	}
	return false
}

// Values returns the raw selection as stored by the form: ["AI_DECIDE"],
// the concrete regions, or nothing.
func (s RegionSelection) Values() []Region {
	switch s.mode {
	case RegionModeAIDecide:
		return []Region{RegionAIDecide}
	case RegionModeConcrete:
		return s.Regions()
	default:
		return nil
	}
}

// Display renders the selection for summaries.
func (s RegionSelection) Display() string {
	if s.AIDecides() {
		return "Curated by AI"
	}
	names := make([]string, len(s.regions))
	for i, r := range s.regions {
		names[i] = string(r)
	}
	return strings.Join(names, " & ")
}
