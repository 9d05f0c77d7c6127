package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultModel is used when Config does not name one.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the Gemini REST endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single generate call.
	DefaultTimeout = 30 * time.Second
)

// IGemini is the Gemini client surface. Implementations are safe for
// concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a Gemini client from the given configuration.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// GenerateContent maps the normalized request onto the generateContent
// wire format and normalizes the response back.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	raw, err := g.callAPI(ctx, g.toWire(req))
	if err != nil {
		return nil, err
	}
	return fromWire(raw), nil
}

func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) callAPI(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, raw)
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	return &result, nil
}

func (g *geminiImpl) toWire(req *Request) GenerateRequest {
	wire := GenerateRequest{
		Contents: make([]Content, len(req.Messages)),
	}
	copy(wire.Contents, req.Messages)

	if req.SystemInstruction != nil {
		wire.SystemInstruction = &Content{Parts: req.SystemInstruction.Parts}
	}

	if len(req.Tools) > 0 {
		decls := make([]FunctionDeclaration, len(req.Tools))
		for i, tool := range req.Tools {
			decls[i] = FunctionDeclaration{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			}
		}
		wire.Tools = []ToolSet{{FunctionDeclarations: decls}}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		wire.GenerationConfig = &GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return wire
}

func fromWire(resp *GenerateResponse) *Response {
	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	if len(resp.Candidates) == 0 {
		return &Response{Usage: usage}
	}
	return &Response{
		Content: resp.Candidates[0].Content,
		Usage:   usage,
	}
}
