// Package importer reads itineraries previously written by plan --export.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
	"github.com/alexanderramin/puravida/internal/planner"
)

// ErrInvalidItinerary is returned when a file parses but does not hold a
// complete itinerary.
var ErrInvalidItinerary = errors.New("invalid itinerary file")

// LoadItinerary reads and validates an exported itinerary. The format is
// chosen by extension: .json, .yaml or .yml.
func LoadItinerary(path string) (*domain.Itinerary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported itinerary format %q (use .json or .yaml)", ext)
	}

	return DecodeItinerary(data)
}

// DecodeItinerary checks JSON data against the itinerary shape the provider
// must return, then decodes it. Missing fields are rejected, never defaulted.
func DecodeItinerary(data []byte) (*domain.Itinerary, error) {
	it, err := llm.ExtractJSON[domain.Itinerary](string(data), planner.ItinerarySchema(), domain.Itinerary.Validate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidItinerary, strings.TrimPrefix(err.Error(), llm.ErrInvalidOutput.Error()+": "))
	}
	return &it, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("empty document")
	}
	return json.Marshal(doc)
}
