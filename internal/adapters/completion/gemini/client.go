package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pawstars-api/internal/ports/completion"
)

const DefaultModel = "gemini-2.0-flash"

var ErrUpstream = errors.New("gemini upstream error")

type Config struct {
	APIKey string
	Model  string

	// BaseURL opcional (proxies / tests).
	BaseURL string
}

// Client implementa completion.Completer con Google GenAI.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient exige APIKey: sin credencial no se construye el cliente
// y el router trabaja solo con fallback.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, completion.ErrNotConfigured
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

func (c *Client) Provider() string { return "gemini" }

func (c *Client) Complete(ctx context.Context, req completion.Request) (string, error) {
	if c == nil || c.client == nil {
		return "", completion.ErrNotConfigured
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.User), generateConfig(req))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return responseText(result), nil
}

func generateConfig(req completion.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if strings.TrimSpace(req.System) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	return cfg
}

func responseText(r *genai.GenerateContentResponse) string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Text())
}
