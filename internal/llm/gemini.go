package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient on the Gemini API. The SDK client is
// built lazily so a missing credential fails before any network setup.
type geminiClient struct {
	cfg      Config
	observer Observer

	mu  sync.Mutex
	sdk *genai.Client
}

// NewGeminiClient creates an LLMClient backed by google.golang.org/genai.
func NewGeminiClient(cfg Config, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{cfg: cfg, observer: observer}
}

func (c *geminiClient) client(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sdk != nil {
		return c.sdk, nil
	}
	cc := &genai.ClientConfig{
		APIKey:     c.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.cfg.HTTPClient,
	}
	if c.cfg.Endpoint != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.cfg.Endpoint}
	}
	sdk, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: creating gemini client: %v", ErrConfiguration, err)
	}
	c.sdk = sdk
	return sdk, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if c.cfg.APIKey == "" {
		notify(ctx, c.observer, c.cfg, req.Task, start, ErrMissingCredential)
		return nil, ErrMissingCredential
	}

	sdk, err := c.client(ctx)
	if err != nil {
		notify(ctx, c.observer, c.cfg, req.Task, start, err)
		return nil, err
	}

	params := resolveParams(c.cfg, req)
	ctx, cancel := context.WithTimeout(ctx, params.timeout)
	defer cancel()

	gc := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(params.temperature)),
		MaxOutputTokens: int32(params.maxTokens),
	}
	if req.SystemPrompt != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := sdk.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.UserPrompt), gc)
	if err != nil {
		err = classifyGeminiError(ctx, err)
		notify(ctx, c.observer, c.cfg, req.Task, start, err)
		return nil, err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		notify(ctx, c.observer, c.cfg, req.Task, start, ErrEmptyResponse)
		return nil, ErrEmptyResponse
	}

	latency := notify(ctx, c.observer, c.cfg, req.Task, start, nil)
	model := c.cfg.Model
	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}
	return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
}

// Available reports whether a credential is configured. The Gemini API has
// no cheap unauthenticated health endpoint, so no network call is made.
func (c *geminiClient) Available(context.Context) bool {
	return c.cfg.APIKey != ""
}

func classifyGeminiError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: gemini returned %d %s: %s", ErrTransport, apiErr.Code, apiErr.Status, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return fmt.Errorf("%w: gemini returned %d %s: %s", ErrTransport, apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message)
	}
	if isConnectionError(err) {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

var genaiTypes = map[SchemaType]genai.Type{
	TypeObject:  genai.TypeObject,
	TypeArray:   genai.TypeArray,
	TypeString:  genai.TypeString,
	TypeInteger: genai.TypeInteger,
	TypeNumber:  genai.TypeNumber,
	TypeBoolean: genai.TypeBoolean,
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genaiTypes[s.Type],
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.PropertyOrdering,
		Items:            toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}
