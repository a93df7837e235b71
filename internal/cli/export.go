package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/puravida/internal/domain"
)

// exportItinerary writes it to path, choosing JSON or YAML by extension.
func exportItinerary(path string, it *domain.Itinerary) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(it, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(it)
	default:
		return fmt.Errorf("unsupported export format %q (use .json or .yaml)", ext)
	}
	if err != nil {
		return fmt.Errorf("encoding itinerary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
