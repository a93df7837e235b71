package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary() Itinerary {
	return Itinerary{
		ItineraryName:    "Pura Vida Warm-Up",
		Summary:          "Surf then celebrate.",
		WeddingLogistics: "Drive 3.5h from Santa Teresa via ferry.",
		WeatherNote:      "Dry and hot.",
		Accommodations: []Accommodation{
			{Name: "Casa Azul", Area: "Santa Teresa", Description: "Beach bungalows", EstimatedPrice: "$180/night"},
			{Name: "Hotel Costa", Area: "Manuel Antonio", Description: "Near the venue", EstimatedPrice: "$220/night"},
			{Name: "Hotel Costa Annex", Area: "Manuel Antonio", Description: "Overflow", EstimatedPrice: "$200/night"},
		},
		Schedule: []DailyPlan{
			{Day: 1, Title: "Arrive", MorningActivity: "Fly", AfternoonActivity: "Drive", EveningActivity: "Dinner", Location: "Santa Teresa"},
			{Day: 2, Title: "Surf", MorningActivity: "Lesson", AfternoonActivity: "Nap", EveningActivity: "Sunset", Location: "Santa Teresa"},
		},
		PackingTips: []string{"Reef-safe sunscreen"},
	}
}

func TestItinerary_Validate_OK(t *testing.T) {
	assert.NoError(t, sampleItinerary().Validate())
}

func TestItinerary_Validate_RejectsBlankAccommodationField(t *testing.T) {
	it := sampleItinerary()
	it.Accommodations[1].EstimatedPrice = "  "

	err := it.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accommodations[1].estimatedPrice")
}

func TestItinerary_Validate_RejectsNonPositiveDay(t *testing.T) {
	it := sampleItinerary()
	it.Schedule[0].Day = 0

	err := it.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule[0].day")
}

func TestItinerary_Areas_Dedupes(t *testing.T) {
	assert.Equal(t, []string{"Santa Teresa", "Manuel Antonio"}, sampleItinerary().Areas())
}

func TestItinerary_ConsistencyNotes(t *testing.T) {
	p := NewPreferences()
	p.SetDuration(2)
	assert.Empty(t, sampleItinerary().ConsistencyNotes(*p))

	p.SetDuration(5)
	notes := sampleItinerary().ConsistencyNotes(*p)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "requested 5")

	it := sampleItinerary()
	it.Schedule[1].Day = 3
	p.SetDuration(2)
	notes = it.ConsistencyNotes(*p)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "contiguous")
}
