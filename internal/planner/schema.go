package planner

import "github.com/alexanderramin/puravida/internal/llm"

// ItinerarySchema is the shape contract sent to the provider and enforced on
// its reply. Every field is required; schedule and accommodations are ordered
// arrays of records.
func ItinerarySchema() *llm.Schema {
	str := func(desc string) *llm.Schema {
		return &llm.Schema{Type: llm.TypeString, Description: desc}
	}

	accommodation := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"name":           str(""),
			"area":           str(""),
			"description":    str(""),
			"estimatedPrice": str("Price per night in USD, e.g. \"$150-$250\""),
		},
		Required:         []string{"name", "area", "description", "estimatedPrice"},
		PropertyOrdering: []string{"name", "area", "description", "estimatedPrice"},
	}

	day := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"day":               {Type: llm.TypeInteger, Description: "Day number starting at 1"},
			"title":             str(""),
			"morningActivity":   str(""),
			"afternoonActivity": str(""),
			"eveningActivity":   str(""),
			"location":          str(""),
		},
		Required:         []string{"day", "title", "morningActivity", "afternoonActivity", "eveningActivity", "location"},
		PropertyOrdering: []string{"day", "title", "morningActivity", "afternoonActivity", "eveningActivity", "location"},
	}

	fields := []string{"itineraryName", "summary", "weddingLogistics", "weatherNote", "accommodations", "schedule", "packingTips"}
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"itineraryName":    str("A creative name for the trip"),
			"summary":          str("A 2-sentence summary of the vibe"),
			"weddingLogistics": str("How to travel between the trip regions and the wedding location, with realistic drive times or domestic flights"),
			"weatherNote":      str("What weather to expect in these areas at the time of the wedding"),
			"accommodations":   {Type: llm.TypeArray, Items: accommodation},
			"schedule":         {Type: llm.TypeArray, Items: day},
			"packingTips":      {Type: llm.TypeArray, Items: str("")},
		},
		Required:         fields,
		PropertyOrdering: fields,
	}
}
