package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/puravida/internal/config"
	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
	"github.com/alexanderramin/puravida/internal/planner"
	"github.com/alexanderramin/puravida/internal/repository"
	"github.com/alexanderramin/puravida/internal/testutil"
)

// mockPlanner records requests and replays canned results.
type mockPlanner struct {
	mu sync.Mutex

	generateErrs []error // consumed in order; nil entries succeed
	reviseErr    error

	generated []domain.Preferences
	feedback  []string
}

func (m *mockPlanner) Generate(_ context.Context, prefs domain.Preferences) (*domain.Itinerary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated = append(m.generated, prefs)
	if len(m.generateErrs) > 0 {
		err := m.generateErrs[0]
		m.generateErrs = m.generateErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return testutil.NewTestItinerary(prefs.Duration), nil
}

func (m *mockPlanner) Revise(_ context.Context, current domain.Itinerary, feedback string, _ domain.Preferences) (*domain.Itinerary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, feedback)
	if m.reviseErr != nil {
		return nil, m.reviseErr
	}
	revised := current
	revised.ItineraryName = "Revised: " + current.ItineraryName
	return &revised, nil
}

var _ planner.Planner = (*mockPlanner)(nil)

func testConfig() *config.Config {
	cfg := llm.DefaultConfig()
	cfg.APIKey = "AIzaSyTESTKEY123456"
	cfg.KeySource = "GEMINI_API_KEY"
	return &config.Config{
		LLM:     cfg,
		Wedding: planner.DefaultWedding(),
		DBPath:  ":memory:",
	}
}

func newTestApp(t *testing.T, p planner.Planner) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		Planner: p,
		Calls:   repository.NewSQLiteCallLogRepo(testutil.NewTestDB(t)),
		Config:  testConfig(),
		In:      strings.NewReader(""),
		Out:     &out,
	}, &out
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetOut(app.out())
	root.SetErr(app.out())
	return root.ExecuteContext(context.Background())
}

func requireContainsAll(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		require.Contains(t, got, w)
	}
}
