package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
	"github.com/alexanderramin/puravida/internal/wizard"
)

func TestPlan_Batch_Success(t *testing.T) {
	p := &mockPlanner{}
	app, out := newTestApp(t, p)

	err := execute(t, app, "plan", "--name", "  Jane Doe ", "--days", "5", "--activity", "surfing")
	require.NoError(t, err)

	require.Len(t, p.generated, 1)
	prefs := p.generated[0]
	assert.Equal(t, "Jane Doe", prefs.TrimmedName())
	assert.Equal(t, domain.DirectionPreWedding, prefs.Direction)
	assert.Equal(t, 5, prefs.Duration)
	assert.Equal(t, []domain.Activity{domain.ActivitySurfing}, prefs.Activities)
	assert.Equal(t, domain.RegionModeAIDecide, prefs.Regions.Mode())

	requireContainsAll(t, out.String(), "JUNGLE TO ALTAR", "DAY BY DAY", "Day 5:")
}

func TestPlan_Batch_ClampsDuration(t *testing.T) {
	p := &mockPlanner{}
	app, _ := newTestApp(t, p)

	require.NoError(t, execute(t, app, "plan", "--name", "Ana", "--days", "40", "--vibe", "High Adventure"))
	assert.Equal(t, domain.MaxTripDuration, p.generated[0].Duration)
}

func TestPlan_Batch_Regions(t *testing.T) {
	p := &mockPlanner{}
	app, _ := newTestApp(t, p)

	err := execute(t, app, "plan", "--name", "Ana", "--direction", "post",
		"--region", "Monteverde", "--region", "Arenal / La Fortuna", "--region", "monteverde")
	require.NoError(t, err)

	prefs := p.generated[0]
	assert.Equal(t, domain.DirectionPostWedding, prefs.Direction)
	assert.Equal(t, []domain.Region{domain.RegionMonteverde, domain.RegionLaFortuna}, prefs.Regions.Regions())
}

func TestPlan_Batch_NameRequired(t *testing.T) {
	p := &mockPlanner{}
	app, _ := newTestApp(t, p)

	err := execute(t, app, "plan", "--name", "   ", "--activity", "Surfing")
	require.ErrorIs(t, err, wizard.ErrValidation)

	var verr *wizard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, wizard.CodeGuestNameRequired, verr.Code)
	assert.Empty(t, p.generated, "gate failure must not reach the provider")
}

func TestPlan_Batch_UnknownOption(t *testing.T) {
	app, _ := newTestApp(t, &mockPlanner{})

	err := execute(t, app, "plan", "--name", "Ana", "--vibe", "Karaoke")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown vibe "Karaoke"`)
}

func TestPlan_Batch_GenerationFailureIsGeneric(t *testing.T) {
	p := &mockPlanner{generateErrs: []error{fmt.Errorf("generating itinerary: %w", llm.ErrTimeout)}}
	app, out := newTestApp(t, p)

	err := execute(t, app, "plan", "--name", "Ana", "--activity", "Surfing")
	require.ErrorIs(t, err, wizard.ErrGenerationFailed)
	assert.ErrorIs(t, err, llm.ErrTransport)
	assert.Equal(t, "generation failed, please try again", err.Error())
	assert.NotContains(t, out.String(), "JUNGLE")
}

func TestPlan_Batch_Feedback(t *testing.T) {
	p := &mockPlanner{}
	app, out := newTestApp(t, p)

	err := execute(t, app, "plan", "--name", "Ana", "--activity", "Surfing", "--feedback", "more beach time")
	require.NoError(t, err)

	assert.Equal(t, []string{"more beach time"}, p.feedback)
	assert.Contains(t, out.String(), "REVISED: JUNGLE TO ALTAR")
}

func TestPlan_Batch_ExportJSON(t *testing.T) {
	app, out := newTestApp(t, &mockPlanner{})
	path := filepath.Join(t.TempDir(), "trip.json")

	require.NoError(t, execute(t, app, "plan", "--name", "Ana", "--activity", "Surfing", "--export", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var it domain.Itinerary
	require.NoError(t, json.Unmarshal(data, &it))
	assert.Equal(t, "Jungle to Altar", it.ItineraryName)
	assert.Len(t, it.Schedule, domain.DefaultTripDuration)
	assert.Contains(t, string(data), `"weddingLogistics"`)
	assert.Contains(t, out.String(), "Saved itinerary to "+path)
}

func TestPlan_Batch_ExportYAML(t *testing.T) {
	app, _ := newTestApp(t, &mockPlanner{})
	path := filepath.Join(t.TempDir(), "trip.yaml")

	require.NoError(t, execute(t, app, "plan", "--name", "Ana", "--vibe", "Relaxing & Wellness", "--export", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var it domain.Itinerary
	require.NoError(t, yaml.Unmarshal(data, &it))
	assert.Equal(t, "Jungle to Altar", it.ItineraryName)
	assert.Equal(t, "Monteverde", it.Accommodations[0].Area)
	assert.Contains(t, string(data), "packingTips:")
}

func TestExportItinerary_UnsupportedFormat(t *testing.T) {
	err := exportItinerary(filepath.Join(t.TempDir(), "trip.pdf"), &domain.Itinerary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported export format ".pdf"`)
}

func TestPlan_NonInteractiveWithoutFlagsStillGated(t *testing.T) {
	p := &mockPlanner{}
	app, _ := newTestApp(t, p)
	app.IsInteractive = func() bool { return false }

	err := execute(t, app, "plan")
	require.ErrorIs(t, err, wizard.ErrValidation)
	assert.Empty(t, p.generated)
}
