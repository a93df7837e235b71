package domain

import (
	"fmt"
	"strings"
)

// Option is one entry of the static option catalog: a machine value plus the
// label shown to guests. Description and Emoji are presentation-only.
type Option[T ~string] struct {
	Value       T
	Label       string
	Description string
	Emoji       string
}

var VibeOptions = []Option[Vibe]{
	{Value: VibeRelaxing, Label: "Relaxing & Wellness", Emoji: "🧘"},
	{Value: VibeAdventure, Label: "High Adventure", Emoji: "🌋"},
	{Value: VibeNature, Label: "Wildlife & Nature", Emoji: "🦥"},
	{Value: VibeLuxury, Label: "Luxury & Comfort", Emoji: "🥂"},
	{Value: VibeCultural, Label: "Cultural & Foodie", Emoji: "🍛"},
	{Value: VibeParty, Label: "Nightlife & Social", Emoji: "💃"},
}

var ActivityOptions = optionsFromValues(
	ActivityZipLining,
	ActivitySportFishing,
	ActivityNightTours,
	ActivityWhaleWatching,
	ActivityTurtles,
	ActivityBirdWatching,
	ActivityScubaDiving,
	ActivitySnorkeling,
	ActivitySurfing,
	ActivityHiking,
	ActivityHotSprings,
	ActivityCoffeeTours,
	ActivityRafting,
	ActivityRappelling,
	ActivityATV,
	ActivityHorseback,
	ActivityMangroves,
	ActivityBridges,
	ActivityCatamaran,
)

var DirectionOptions = []Option[Direction]{
	{Value: DirectionPreWedding, Label: "Before the wedding (I need to get TO Manuel Antonio)"},
	{Value: DirectionPostWedding, Label: "After the wedding (I am leaving FROM Manuel Antonio)"},
}

var RegionOptions = []Option[Region]{
	{Value: RegionAIDecide, Label: "Surprise Me (Based on Activities)", Description: "We will pick the best spot for you.", Emoji: "✨"},
	{Value: RegionManuelAntonio, Label: "Manuel Antonio (Stay Local)", Description: "Stay near the wedding. Beaches & Rainforest."},
	{Value: RegionLaFortuna, Label: "Arenal / La Fortuna", Description: "Volcanoes, Hot Springs & Waterfalls."},
	{Value: RegionMonteverde, Label: "Monteverde", Description: "Cloud Forest, Cool Weather & Nature."},
	{Value: RegionGuanacaste, Label: "Guanacaste / Tamarindo", Description: "Gold Coast Beaches, Dry Forest & Resorts."},
	{Value: RegionSantaTeresa, Label: "Santa Teresa / Nosara", Description: "Surf, Yoga & Bohemian Vibes."},
	{Value: RegionOsa, Label: "Osa Peninsula / Drake Bay", Description: "Wild Nature, Tapirs & Raw Adventure."},
	{Value: RegionPuertoViejo, Label: "Puerto Viejo (Caribbean)", Description: "Caribbean Culture, Reggae & Wildlife."},
}

var BudgetOptions = optionsFromValues(BudgetFriendly, BudgetModerate, BudgetHighEnd, BudgetUltraLuxury)

var PartyOptions = optionsFromValues(PartySolo, PartyCouple, PartyFamily, PartyFriends)

func optionsFromValues[T ~string](values ...T) []Option[T] {
	out := make([]Option[T], len(values))
	for i, v := range values {
		out[i] = Option[T]{Value: v, Label: string(v)}
	}
	return out
}

// Contains reports whether v is a catalog value.
func Contains[T ~string](options []Option[T], v T) bool {
	for _, o := range options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// LabelFor returns the catalog label for v, or v itself when v is unknown.
func LabelFor[T ~string](options []Option[T], v T) string {
	for _, o := range options {
		if o.Value == v {
			return o.Label
		}
	}
	return string(v)
}

// BudgetRank returns the tier position of b (0 = cheapest), or -1.
func BudgetRank(b BudgetLevel) int {
	for i, o := range BudgetOptions {
		if o.Value == b {
			return i
		}
	}
	return -1
}

// parseOption matches s against values and labels, case-insensitively.
func parseOption[T ~string](kind string, options []Option[T], s string) (T, error) {
	needle := strings.TrimSpace(s)
	for _, o := range options {
		if strings.EqualFold(string(o.Value), needle) || strings.EqualFold(o.Label, needle) {
			return o.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}

func ParseVibe(s string) (Vibe, error) { return parseOption("vibe", VibeOptions, s) }

func ParseActivity(s string) (Activity, error) {
	return parseOption("activity", ActivityOptions, s)
}

func ParseRegion(s string) (Region, error) { return parseOption("region", RegionOptions, s) }

func ParseBudget(s string) (BudgetLevel, error) {
	return parseOption("budget level", BudgetOptions, s)
}

func ParseParty(s string) (TravelingParty, error) {
	return parseOption("traveling party", PartyOptions, s)
}

// ParseDirection also accepts the short forms "pre" and "post".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "before":
		return DirectionPreWedding, nil
	case "post", "after":
		return DirectionPostWedding, nil
	}
	return parseOption("travel direction", DirectionOptions, s)
}
