package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pawstars-api/internal/platform/httpclient"
	"pawstars-api/internal/ports/completion"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4o-mini"

	chatCompletionsPath = "/v1/chat/completions"
)

var (
	ErrUnauthorized = errors.New("openai unauthorized")
	ErrUpstream     = errors.New("openai upstream error")
)

// Config del cliente OpenAI.
// APIKey normalmente viene de OPENAI_API_KEY; vacío => no configurado.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	apiKey string
	model  string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	apiKey := strings.TrimSpace(cfg.APIKey)

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:   base,
		Timeout:   cfg.Timeout,
		Transport: cfg.Transport,
		Headers: map[string]string{
			"Authorization": "Bearer " + apiKey,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	return &Client{
		apiKey: apiKey,
		model:  model,
		http:   hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) Provider() string { return "openai" }

// Timeout es el límite del http.Client subyacente.
func (c *Client) Timeout() time.Duration {
	if c == nil || c.http == nil || c.http.HTTP == nil {
		return 0
	}
	return c.http.HTTP.Timeout
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// Todo opcional: cualquier nivel puede faltar en la respuesta.
type chatResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implementa completion.Completer contra /v1/chat/completions.
// Un solo intento; el caller decide el timeout vía ctx.
func (c *Client) Complete(ctx context.Context, req completion.Request) (string, error) {
	if !c.IsConfigured() {
		return "", completion.ErrNotConfigured
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	var out chatResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, chatCompletionsPath, body, &out); err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
		default:
			return "", fmt.Errorf("%w: %w", ErrUpstream, err)
		}
	}

	return firstContent(out), nil
}

func firstContent(r chatResponse) string {
	if len(r.Choices) == 0 {
		return ""
	}
	msg := r.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return ""
	}
	return strings.TrimSpace(*msg.Content)
}
