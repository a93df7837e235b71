package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/google/uuid"
)

// Provider call options
type CallOption func(*domain.ProviderCall)

func WithSession(id string) CallOption {
	return func(c *domain.ProviderCall) {
		c.SessionID = id
	}
}

func WithFailure(code, class string) CallOption {
	return func(c *domain.ProviderCall) {
		c.Success = false
		c.ErrorCode = code
		c.ErrorClass = class
	}
}

func WithLatency(ms int64) CallOption {
	return func(c *domain.ProviderCall) {
		c.LatencyMs = ms
	}
}

func WithCreatedAt(t time.Time) CallOption {
	return func(c *domain.ProviderCall) {
		c.CreatedAt = t
	}
}

func NewTestCall(opts ...CallOption) *domain.ProviderCall {
	c := &domain.ProviderCall{
		ID:        uuid.New().String(),
		Task:      "itinerary",
		Provider:  "gemini",
		Model:     "gemini-2.5-flash",
		LatencyMs: 1200,
		Success:   true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestItinerary returns a structurally valid itinerary with the given
// number of contiguous days.
func NewTestItinerary(days int) *domain.Itinerary {
	it := &domain.Itinerary{
		ItineraryName:    "Jungle to Altar",
		Summary:          "Cloud forest mornings, then down to the coast. You arrive rested for the wedding.",
		WeddingLogistics: "Monteverde to Manuel Antonio is about 4 hours by shuttle.",
		WeatherNote:      "Dry season: hot afternoons on the coast, cool nights in the cloud forest.",
		Accommodations: []domain.Accommodation{
			{Name: "Hotel Belmar", Area: "Monteverde", Description: "Eco lodge with forest views", EstimatedPrice: "$220/night"},
			{Name: "Arenas del Mar", Area: "Manuel Antonio", Description: "Beachfront rainforest resort", EstimatedPrice: "$450/night"},
		},
		PackingTips: []string{"Light rain jacket", "Reef-safe sunscreen"},
	}
	for d := 1; d <= days; d++ {
		it.Schedule = append(it.Schedule, domain.DailyPlan{
			Day:               d,
			Title:             fmt.Sprintf("Day %d", d),
			MorningActivity:   "Guided hike",
			AfternoonActivity: "Hanging bridges",
			EveningActivity:   "Night tour",
			Location:          "Monteverde",
		})
	}
	return it
}
