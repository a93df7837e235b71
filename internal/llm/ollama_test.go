package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ollamaConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOllama
	cfg.Model = DefaultOllamaModel
	cfg.Endpoint = endpoint
	return cfg
}

func TestOllamaClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "system prompt", req.System)
		assert.Equal(t, "user prompt", req.Prompt)
		require.NotNil(t, req.Options.Temperature)
		assert.InDelta(t, 0.7, *req.Options.Temperature, 1e-9)

		var format map[string]any
		require.NoError(t, json.Unmarshal(req.Format, &format))
		assert.Equal(t, "object", format["type"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: `{"name":"trip","days":[]}`})
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskItinerary,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
		Schema:       testSchema(),
	})

	require.NoError(t, err)
	assert.Equal(t, `{"name":"trip","days":[]}`, resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOllamaClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskItinerary, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestOllamaClient_Generate_Unavailable(t *testing.T) {
	cfg := ollamaConfig("http://127.0.0.1:1") // nothing listening
	cfg.TimeoutMs = 1000

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskItinerary, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestOllamaClient_Generate_SingleAttemptOnServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal error"))
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskItinerary, UserPrompt: "test"})

	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestOllamaClient_Generate_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "  "})
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskItinerary, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.ErrorIs(t, err, ErrProvider)
}

func TestOllamaClient_Generate_UndecodableEnvelopeIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway page</html>"))
	}))
	defer srv.Close()

	var observed CallEvent
	observer := &captureObserver{fn: func(e CallEvent) { observed = e }}
	client := NewOllamaClient(ollamaConfig(srv.URL), observer)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskItinerary, UserPrompt: "test"})

	require.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorIs(t, err, ErrProvider)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Equal(t, "provider", observed.ErrorClass)
}

func TestOllamaClient_Generate_SendsZeroTemperature(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	zero := 0.0
	client := NewOllamaClient(ollamaConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskItinerary, UserPrompt: "test", Temperature: &zero})
	require.NoError(t, err)

	options, ok := raw["options"].(map[string]any)
	require.True(t, ok, "options missing from request")
	require.Contains(t, options, "temperature")
	assert.Equal(t, 0.0, options["temperature"])
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, NewOllamaClient(ollamaConfig(srv.URL), NoopObserver{}).Available(context.Background()))
	assert.False(t, NewOllamaClient(ollamaConfig("http://127.0.0.1:1"), NoopObserver{}).Available(context.Background()))
}

func TestOllamaClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := NewOllamaClient(ollamaConfig(srv.URL), obs)
	ctx := WithSessionID(context.Background(), "sess-1")
	_, err := client.Generate(ctx, GenerateRequest{Task: TaskRevision, UserPrompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", captured.SessionID)
	assert.Equal(t, TaskRevision, captured.Task)
	assert.Equal(t, ProviderOllama, captured.Provider)
	assert.Equal(t, "llama3.2", captured.Model)
	assert.True(t, captured.Success)
}

func TestOllamaClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.TimeoutMs = 50

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	_, err := NewOllamaClient(cfg, obs).Generate(context.Background(), GenerateRequest{Task: TaskItinerary, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

func TestNewClient_SelectsProvider(t *testing.T) {
	c, err := NewClient(ollamaConfig("http://localhost:11434"), nil)
	require.NoError(t, err)
	assert.IsType(t, &ollamaClient{}, c)

	c, err = NewClient(DefaultConfig(), nil)
	require.NoError(t, err)
	assert.IsType(t, &geminiClient{}, c)

	cfg := DefaultConfig()
	cfg.Provider = "mystery"
	_, err = NewClient(cfg, nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(_ context.Context, e CallEvent) { o.fn(e) }
