package planner

import (
	"sort"
	"strings"

	"github.com/alexanderramin/puravida/internal/domain"
)

// RouteMode is the branch of the region decision table a preference record
// falls into.
type RouteMode string

const (
	RouteMultiRegion  RouteMode = "multi_region"
	RouteSingleRegion RouteMode = "single_region"
	RouteAffinity     RouteMode = "activity_affinity"
)

// Affinity is a group of activities that points at a particular kind of
// region when the planner chooses the destination.
type Affinity string

const (
	AffinityMarine      Affinity = "marine"
	AffinityVolcano     Affinity = "volcano"
	AffinityCloudForest Affinity = "cloud_forest"
	AffinityCaribbean   Affinity = "caribbean"
)

var marineActivities = []domain.Activity{
	domain.ActivityScubaDiving,
	domain.ActivitySnorkeling,
	domain.ActivitySurfing,
	domain.ActivityWhaleWatching,
}

// affinityKeywords match activity labels case-insensitively. Hanging bridges
// are the signature Monteverde canopy walk. No catalog activity points at the
// Caribbean coast, so AffinityCaribbean only fires for labels outside the
// catalog; the full rule table in the prompt still covers it.
var affinityKeywords = []struct {
	affinity Affinity
	keywords []string
}{
	{AffinityVolcano, []string{"volcano", "hot spring"}},
	{AffinityCloudForest, []string{"cloud forest", "hanging bridge"}},
	{AffinityCaribbean, []string{"caribbean"}},
}

// AffinityMatch records which selected activities triggered an affinity.
type AffinityMatch struct {
	Affinity   Affinity
	Activities []domain.Activity
}

// Routing is the deterministic evaluation of the region decision table for
// one preference record.
type Routing struct {
	Mode RouteMode
	// Regions holds the concrete regions in suggested visiting order. Empty
	// in affinity mode.
	Regions []domain.Region
	Matches []AffinityMatch
}

// Route evaluates the decision table. Concrete regions are ordered by
// distance from the wedding: farthest first when travelling before the
// wedding so the trip ends at the venue, nearest first afterwards. Without
// drive hours for every region, only the venue's own region is moved (last
// before the wedding, first after it) and the rest keep selection order.
func Route(p domain.Preferences, w Wedding) Routing {
	if !p.Regions.AIDecides() {
		regions := p.Regions.Regions()
		if len(regions) == 1 {
			return Routing{Mode: RouteSingleRegion, Regions: regions}
		}
		distance := make(map[domain.Region]float64, len(regions))
		measured := true
		for _, r := range regions {
			h, ok := w.hoursFrom(r)
			measured = measured && ok
			distance[r] = h
		}
		if !measured {
			for _, r := range regions {
				distance[r] = 1
				if w.IsVenue(r) {
					distance[r] = 0
				}
			}
		}
		sort.SliceStable(regions, func(i, j int) bool {
			hi, hj := distance[regions[i]], distance[regions[j]]
			if p.Direction == domain.DirectionPostWedding {
				return hi < hj
			}
			return hi > hj
		})
		return Routing{Mode: RouteMultiRegion, Regions: regions}
	}

	r := Routing{Mode: RouteAffinity}
	if marine := intersect(p.Activities, marineActivities); len(marine) > 0 {
		r.Matches = append(r.Matches, AffinityMatch{Affinity: AffinityMarine, Activities: marine})
	}
	for _, group := range affinityKeywords {
		var hits []domain.Activity
		for _, a := range p.Activities {
			if matchesAny(string(a), group.keywords) {
				hits = append(hits, a)
			}
		}
		if len(hits) > 0 {
			r.Matches = append(r.Matches, AffinityMatch{Affinity: group.affinity, Activities: hits})
		}
	}
	return r
}

// Has reports whether the affinity fired.
func (r Routing) Has(a Affinity) bool {
	for _, m := range r.Matches {
		if m.Affinity == a {
			return true
		}
	}
	return false
}

// ActivitiesFor returns the activities that triggered a.
func (r Routing) ActivitiesFor(a Affinity) []domain.Activity {
	for _, m := range r.Matches {
		if m.Affinity == a {
			return m.Activities
		}
	}
	return nil
}

// ExcludesLaFortuna reports whether La Fortuna must not be the base of the
// trip. Marine activities rule out the landlocked volcano region.
func (r Routing) ExcludesLaFortuna() bool {
	return r.Mode == RouteAffinity && r.Has(AffinityMarine)
}

func intersect(selected, group []domain.Activity) []domain.Activity {
	var out []domain.Activity
	for _, a := range selected {
		for _, g := range group {
			if a == g {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func matchesAny(label string, keywords []string) bool {
	label = strings.ToLower(label)
	for _, k := range keywords {
		if strings.Contains(label, k) {
			return true
		}
	}
	return false
}
