package planner

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
)

// Request is a fully built provider request plus the routing decision it
// encodes.
type Request struct {
	Task         llm.TaskType
	SystemPrompt string
	UserPrompt   string
	Schema       *llm.Schema
	Routing      Routing
}

// LLM converts the request for an llm.LLMClient.
func (r Request) LLM() llm.GenerateRequest {
	return llm.GenerateRequest{
		Task:         r.Task,
		SystemPrompt: r.SystemPrompt,
		UserPrompt:   r.UserPrompt,
		Schema:       r.Schema,
	}
}

const conciergeSystemPrompt = `You are a luxury travel concierge planning Costa Rica trips for guests of a wedding.
You know realistic drive times, domestic flights, seasonal weather and lodging in every region of the country.

You must output ONLY a JSON object matching the provided schema:
- Every field is required. Never leave a field empty.
- schedule has one entry per trip day, numbered from 1.
- accommodations lists where the guest sleeps, in the order they stay there.
- Output ONLY the JSON object, no markdown, no explanation.`

const regionRuleTable = `REGION SELECTION & ROUTING RULES:
1. IF the guest selected multiple regions: create ONE logical route connecting them. Account for travel time between them in the schedule. Order the route relative to %[1]s: before the wedding the route ENDS at or near %[1]s, after the wedding it STARTS at %[1]s.
2. IF the guest selected a single region: focus the trip there.
3. IF the planner decides the region:
   - IF Scuba Diving, Snorkeling, Surfing or Whale Watching is selected: DO NOT SUGGEST La Fortuna / Arenal, it is landlocked. Suggest Osa Peninsula (Drake Bay / Uvita) for nature and whales, Guanacaste for diving and resorts, or Santa Teresa / Nosara for surf.
   - IF Volcano or Hot Springs activities are selected: suggest La Fortuna / Arenal.
   - IF Cloud Forest activities are selected: suggest Monteverde.
   - IF Caribbean Culture is selected: suggest Puerto Viejo and warn about the long drive to %[1]s.
   - IF no location-specific activity is selected: suggest Uvita / Dominical (near %[1]s) for a seamless trip, OR Monteverde as a contrast to the beach wedding.
4. AVOID DEFAULTING TO LA FORTUNA: only recommend it when the guest selected it or chose volcano / hot spring activities.
5. LOGISTICS: travel time between the chosen region(s) and %[1]s must be realistic. State drive times or domestic flights in weddingLogistics.
6. WEATHER: the wedding is in %[2]s (%[3]s). Reflect this in weatherNote and packingTips.`

// BuildItineraryRequest derives the provider request for a frozen preference
// record. The output is a pure function of its inputs.
func BuildItineraryRequest(p domain.Preferences, w Wedding) Request {
	routing := Route(p, w)

	var b strings.Builder
	fmt.Fprintf(&b, "The wedding is strictly located in: %s.\n", w.Location)
	fmt.Fprintf(&b, "The wedding date is in %s.\n\n", w.Date)

	b.WriteString("GUEST PROFILE:\n")
	fmt.Fprintf(&b, "- Guest Name: %s\n", p.TrimmedName())
	fmt.Fprintf(&b, "- Trip Type: %s\n", p.Direction)
	fmt.Fprintf(&b, "- Trip Duration: %d days (excluding wedding days)\n", p.Duration)
	fmt.Fprintf(&b, "- Vibes Desired: %s\n", listOrNone(domain.JoinValues(p.Vibes)))
	fmt.Fprintf(&b, "- Specific Activities Desired: %s\n", listOrNone(domain.JoinValues(p.Activities)))
	fmt.Fprintf(&b, "- Budget: %s\n", p.Budget)
	fmt.Fprintf(&b, "- Group Type: %s\n", p.Party)
	fmt.Fprintf(&b, "- Preferred Regions to Visit: %s\n\n", regionsLine(p.Regions))

	b.WriteString("CRITICAL LOGISTICS:\n")
	b.WriteString(directionInstruction(p.Direction, p.Duration, w))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, regionRuleTable, w.Location, w.Date, w.Season)
	b.WriteString("\n\n")

	b.WriteString("APPLICABLE RULES FOR THIS GUEST:\n")
	for _, rule := range applicableRules(routing, p, w) {
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nTask: create a detailed %d-day travel itinerary for %s. Output strictly valid JSON matching the schema.", p.Duration, p.TrimmedName())

	return Request{
		Task:         llm.TaskItinerary,
		SystemPrompt: conciergeSystemPrompt,
		UserPrompt:   b.String(),
		Schema:       ItinerarySchema(),
		Routing:      routing,
	}
}

// BuildRevisionRequest asks the provider to regenerate the whole itinerary
// with the guest's feedback applied, anchored to the original direction.
func BuildRevisionRequest(current domain.Itinerary, feedback string, p domain.Preferences, w Wedding) Request {
	var b strings.Builder
	b.WriteString("You previously generated a travel itinerary for a wedding guest in Costa Rica.\n")
	b.WriteString("The guest wants to make changes to the existing itinerary.\n\n")

	b.WriteString("ORIGINAL PREFERENCES:\n")
	fmt.Fprintf(&b, "- Guest: %s\n", p.TrimmedName())
	fmt.Fprintf(&b, "- Trip Type: %s\n", p.Direction)
	fmt.Fprintf(&b, "- Trip Duration: %d days\n", p.Duration)
	fmt.Fprintf(&b, "- Region: %s\n", regionsLine(p.Regions))
	fmt.Fprintf(&b, "- Activities: %s\n", listOrNone(domain.JoinValues(p.Activities)))
	fmt.Fprintf(&b, "- Vibe: %s\n", listOrNone(domain.JoinValues(p.Vibes)))
	fmt.Fprintf(&b, "- Budget: %s\n", p.Budget)
	fmt.Fprintf(&b, "- Group Type: %s\n\n", p.Party)

	b.WriteString("CURRENT ITINERARY SUMMARY:\n")
	fmt.Fprintf(&b, "%q\n", current.Summary)
	fmt.Fprintf(&b, "(Currently visiting: %s)\n\n", listOrNone(strings.Join(current.Areas(), ", ")))

	b.WriteString("GUEST REQUEST FOR CHANGES:\n")
	fmt.Fprintf(&b, "%q\n\n", strings.TrimSpace(feedback))

	b.WriteString("TASK:\n")
	b.WriteString("Regenerate the ENTIRE itinerary JSON to address the guest's feedback.\n")
	b.WriteString("- If they ask to change location, change the schedule and accommodations accordingly.\n")
	b.WriteString("- If they ask for more or less activity, adjust the schedule.\n")
	fmt.Fprintf(&b, "- Keep the wedding logistics accurate (%s) based on the original direction (%s): %s\n",
		w.Location, p.Direction, directionInstruction(p.Direction, p.Duration, w))
	b.WriteString("\nOutput strictly valid JSON matching the itinerary schema.")

	return Request{
		Task:         llm.TaskRevision,
		SystemPrompt: conciergeSystemPrompt,
		UserPrompt:   b.String(),
		Schema:       ItinerarySchema(),
		Routing:      Route(p, w),
	}
}

func directionInstruction(d domain.Direction, days int, w Wedding) string {
	if d == domain.DirectionPostWedding {
		return fmt.Sprintf("The guest is traveling AFTER the wedding. The itinerary must START from %s on Day 1 (leaving the wedding) and move towards the next destination or the airport (SJO).", w.Location)
	}
	return fmt.Sprintf("The guest is traveling BEFORE the wedding. The itinerary must END in or very near %s on Day %d so they are ready for the wedding events, progressively moving towards it.", w.Location, days)
}

// applicableRules lists the rules from the table that fire for this guest,
// phrased concretely.
func applicableRules(r Routing, p domain.Preferences, w Wedding) []string {
	var rules []string

	switch r.Mode {
	case RouteMultiRegion:
		stops := make([]string, 0, len(r.Regions)+1)
		if p.Direction == domain.DirectionPostWedding {
			stops = append(stops, w.Location)
		}
		for _, region := range r.Regions {
			if !w.IsVenue(region) {
				stops = append(stops, string(region))
			}
		}
		if p.Direction == domain.DirectionPreWedding {
			stops = append(stops, w.Location)
			rules = append(rules, fmt.Sprintf("Multiple regions selected (%s): build one logical route that ENDS at or near %s on the final day. Suggested order: %s.",
				domain.JoinValues(p.Regions.Regions()), w.Location, strings.Join(stops, " -> ")))
		} else {
			rules = append(rules, fmt.Sprintf("Multiple regions selected (%s): build one logical route that STARTS at %s on Day 1. Suggested order: %s.",
				domain.JoinValues(p.Regions.Regions()), w.Location, strings.Join(stops, " -> ")))
		}
	case RouteSingleRegion:
		rules = append(rules, fmt.Sprintf("Single region selected: focus the whole trip on %s.", r.Regions[0]))
	case RouteAffinity:
		rules = append(rules, affinityRules(r, w)...)
	}

	for _, region := range r.Regions {
		if h, ok := w.hoursFrom(region); ok && !w.IsVenue(region) {
			rules = append(rules, fmt.Sprintf("%s is roughly %s from %s by road. Plan the transfer day around it.", region, formatHours(h), w.Location))
		}
	}
	rules = append(rules, fmt.Sprintf("Explain realistic travel times to and from %s in weddingLogistics.", w.Location))
	rules = append(rules, fmt.Sprintf("Weather: %s, %s.", w.Date, w.Season))
	return rules
}

func affinityRules(r Routing, w Wedding) []string {
	var rules []string
	if r.Has(AffinityMarine) {
		rules = append(rules, fmt.Sprintf("Marine activities selected (%s): DO NOT SUGGEST La Fortuna / Arenal as a base, it is landlocked. Prefer coastal regions: Osa Peninsula (Drake Bay / Uvita) for nature and whales, Guanacaste for diving and resorts, Santa Teresa / Nosara for surfing.",
			domain.JoinValues(r.ActivitiesFor(AffinityMarine))))
	}
	if r.Has(AffinityVolcano) {
		if r.Has(AffinityMarine) {
			rules = append(rules, fmt.Sprintf("Volcano / hot spring activities selected (%s): La Fortuna / Arenal may appear only as a short side stop, never as the main base.",
				domain.JoinValues(r.ActivitiesFor(AffinityVolcano))))
		} else {
			rules = append(rules, fmt.Sprintf("Volcano / hot spring activities selected (%s): suggest La Fortuna / Arenal.",
				domain.JoinValues(r.ActivitiesFor(AffinityVolcano))))
		}
	}
	if r.Has(AffinityCloudForest) {
		rules = append(rules, fmt.Sprintf("Cloud forest activities selected (%s): suggest Monteverde.",
			domain.JoinValues(r.ActivitiesFor(AffinityCloudForest))))
	}
	if r.Has(AffinityCaribbean) {
		rules = append(rules, fmt.Sprintf("Caribbean activities selected (%s): suggest Puerto Viejo and flag the long transfer to %s.",
			domain.JoinValues(r.ActivitiesFor(AffinityCaribbean)), w.Location))
	}
	if len(r.Matches) == 0 {
		rules = append(rules, fmt.Sprintf("No location-specific activity selected: suggest Uvita / Dominical near %s for a seamless trip, OR Monteverde as a contrast to the beach wedding.", w.Location))
	}
	if !r.Has(AffinityVolcano) {
		rules = append(rules, "Do not default to La Fortuna / Arenal.")
	}
	return rules
}

func regionsLine(sel domain.RegionSelection) string {
	if sel.AIDecides() {
		return "Decide the best region based on activities"
	}
	return domain.JoinValues(sel.Regions())
}

func listOrNone(s string) string {
	if s == "" {
		return "none selected"
	}
	return s
}

func formatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}
