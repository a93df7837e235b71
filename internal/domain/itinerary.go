package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Accommodation struct {
	Name           string `json:"name" yaml:"name"`
	Area           string `json:"area" yaml:"area"`
	Description    string `json:"description" yaml:"description"`
	EstimatedPrice string `json:"estimatedPrice" yaml:"estimatedPrice"`
}

type DailyPlan struct {
	Day               int    `json:"day" yaml:"day"`
	Title             string `json:"title" yaml:"title"`
	MorningActivity   string `json:"morningActivity" yaml:"morningActivity"`
	AfternoonActivity string `json:"afternoonActivity" yaml:"afternoonActivity"`
	EveningActivity   string `json:"eveningActivity" yaml:"eveningActivity"`
	Location          string `json:"location" yaml:"location"`
}

// Itinerary is the provider-generated trip plan. It is treated as immutable
// once received.
type Itinerary struct {
	ItineraryName    string          `json:"itineraryName" yaml:"itineraryName"`
	Summary          string          `json:"summary" yaml:"summary"`
	WeddingLogistics string          `json:"weddingLogistics" yaml:"weddingLogistics"`
	WeatherNote      string          `json:"weatherNote" yaml:"weatherNote"`
	Accommodations   []Accommodation `json:"accommodations" yaml:"accommodations"`
	Schedule         []DailyPlan     `json:"schedule" yaml:"schedule"`
	PackingTips      []string        `json:"packingTips" yaml:"packingTips"`
}

// Validate checks the value-level constraints that a JSON shape check can't
// express: required text must be non-blank and days must be positive.
func (it Itinerary) Validate() error {
	var errs []error
	for i, a := range it.Accommodations {
		fields := [...][2]string{
			{"name", a.Name}, {"area", a.Area}, {"description", a.Description}, {"estimatedPrice", a.EstimatedPrice},
		}
		for _, f := range fields {
			if strings.TrimSpace(f[1]) == "" {
				errs = append(errs, fmt.Errorf("accommodations[%d].%s is empty", i, f[0]))
			}
		}
	}
	for i, d := range it.Schedule {
		if d.Day < 1 {
			errs = append(errs, fmt.Errorf("schedule[%d].day must be positive, got %d", i, d.Day))
		}
	}
	return errors.Join(errs...)
}

// Areas returns the accommodation areas in order, without duplicates.
func (it Itinerary) Areas() []string {
	seen := make(map[string]bool, len(it.Accommodations))
	var out []string
	for _, a := range it.Accommodations {
		if a.Area == "" || seen[a.Area] {
			continue
		}
		seen[a.Area] = true
		out = append(out, a.Area)
	}
	return out
}

// ConsistencyNotes lists informational mismatches between the itinerary and
// the preferences it was generated for. They never reject the itinerary.
func (it Itinerary) ConsistencyNotes(p Preferences) []string {
	var notes []string
	if len(it.Schedule) != p.Duration {
		notes = append(notes, fmt.Sprintf("schedule has %d days, requested %d", len(it.Schedule), p.Duration))
	}
	for i, d := range it.Schedule {
		if d.Day != i+1 {
			notes = append(notes, fmt.Sprintf("day numbers are not contiguous from 1 (position %d is day %d)", i+1, d.Day))
			break
		}
	}
	return notes
}
