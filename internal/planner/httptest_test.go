package planner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

type failingTransport struct {
	t *testing.T
}

func (f failingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	f.t.Errorf("unexpected network call to %s", r.URL)
	return nil, io.ErrUnexpectedEOF
}

// TestPlanner_Generate_NoCredential runs the real Gemini client with a
// transport that fails the test if touched.
func TestPlanner_Generate_NoCredential(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.HTTPClient = &http.Client{Transport: failingTransport{t: t}}
	client, err := llm.NewClient(cfg, llm.NoopObserver{})
	require.NoError(t, err)

	p := prefsWith(t, domain.DirectionPreWedding, []domain.Activity{domain.ActivitySurfing})
	_, err = NewPlanner(client, DefaultWedding(), nil).Generate(context.Background(), p)

	require.ErrorIs(t, err, llm.ErrConfiguration)
	assert.NotErrorIs(t, err, llm.ErrTransport)
}

// TestPlanner_Generate_WithOllamaHTTPTestServer exercises the full path:
// request builder -> Ollama client -> HTTP -> shape contract -> itinerary.
func TestPlanner_Generate_WithOllamaHTTPTestServer(t *testing.T) {
	want := sampleItinerary(5)

	srv := newHTTPTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body["prompt"], "DO NOT SUGGEST La Fortuna")
		format, _ := body["format"].(map[string]any)
		require.NotNil(t, format)
		assert.ElementsMatch(t,
			[]any{"itineraryName", "summary", "weddingLogistics", "weatherNote", "accommodations", "schedule", "packingTips"},
			format["required"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "llama3.2",
			"response": itineraryJSON(t, want),
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Provider = llm.ProviderOllama
	cfg.Model = "llama3.2"
	cfg.Endpoint = srv.URL
	client, err := llm.NewClient(cfg, llm.NoopObserver{})
	require.NoError(t, err)

	p := prefsWith(t, domain.DirectionPreWedding, []domain.Activity{domain.ActivitySurfing}, domain.RegionAIDecide)
	p.SetDuration(5)
	got, err := NewPlanner(client, DefaultWedding(), nil).Generate(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestPlanner_Generate_OllamaServerErrorIsTransport(t *testing.T) {
	srv := newHTTPTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Provider = llm.ProviderOllama
	cfg.Endpoint = srv.URL
	client, err := llm.NewClient(cfg, llm.NoopObserver{})
	require.NoError(t, err)

	_, err = NewPlanner(client, DefaultWedding(), nil).Generate(context.Background(), *domain.NewPreferences())
	assert.ErrorIs(t, err, llm.ErrTransport)
}
