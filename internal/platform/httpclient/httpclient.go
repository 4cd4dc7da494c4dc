package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes acota lo que se lee de upstream (errores y JSON).
	maxBodyBytes = 1 << 20
)

// Config del cliente. Todo es opcional salvo que se usen paths relativos (BaseURL).
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Headers que se mandan en cada request (p.ej. Authorization).
	Headers map[string]string

	// Transport permite inyectar un RoundTripper (tests).
	Transport http.RoundTripper
}

// Client envuelve *http.Client con helpers JSON para adapters upstream.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	headers map[string]string
}

// New crea un Client. Devuelve error solo si BaseURL no es una URL válida.
func New(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := cfg.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}

	c := &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		headers: map[string]string{},
	}

	for k, v := range cfg.Headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		c.headers[k] = v
	}

	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
		c.BaseURL = strings.TrimRight(base, "/")
	}
	return c, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// StatusCode extrae el status de un *HTTPError envuelto; 0 si no aplica.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo si BaseURL está seteado
// - in: body a enviar (nil => sin body)
// - out: destino del JSON (nil => ignora body)
// Retorna *HTTPError si status no es 2xx.
func (c *Client) DoJSON(ctx context.Context, method, pathOrURL string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if c.BaseURL == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
