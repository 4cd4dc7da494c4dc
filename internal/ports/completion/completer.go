package completion

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("completion provider not configured")
	ErrEmptyContent  = errors.New("completion returned empty content")
	ErrTimeout       = errors.New("completion timed out")
)

// Request es una conversación de dos mensajes (persona de sistema + prompt de usuario).
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Completer genera texto a partir de un Request.
// Implementaciones: adapters/completion/openai y adapters/completion/gemini.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Provider() string
}

// Generate hace un único intento acotado por timeout.
// c == nil equivale a "sin credencial": devuelve ErrNotConfigured sin tocar la red.
// El texto devuelto siempre viene trimmeado y no vacío cuando err == nil.
func Generate(ctx context.Context, c Completer, timeout time.Duration, req Request) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := c.Complete(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Join(ErrTimeout, err)
		}
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyContent
	}
	return out, nil
}

// Reason clasifica un error de Generate para logs.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrEmptyContent):
		return "empty_content"
	default:
		return "upstream"
	}
}

// ProviderName devuelve el nombre del proveedor o "none".
func ProviderName(c Completer) string {
	if c == nil {
		return "none"
	}
	return c.Provider()
}
