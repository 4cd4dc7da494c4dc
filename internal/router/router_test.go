package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"pawstars-api/internal/adapters/completion/openai"
	"pawstars-api/internal/router"
)

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body, _ := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}
}

func TestHTTP_Fortune_NoProvider_Fallback(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body, hdr := doReq(t, ts.URL, "POST", "/api/fortune", map[string]any{
		"name":  "Choco",
		"breed": "Poodle",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if hdr.Get("X-PawStars-Source") != "fallback" {
		t.Fatalf("expected fallback source, got %q", hdr.Get("X-PawStars-Source"))
	}
	if hdr.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	var resp map[string]string
	_ = json.Unmarshal(body, &resp)
	if !strings.HasPrefix(resp["fortune"], "🐾 Choco (Poodle)의 오늘의 운세") {
		t.Fatalf("unexpected fortune: %q", resp["fortune"])
	}
}

func TestHTTP_Fortune_BadRequests(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	{
		st, body, _ := doReq(t, ts.URL, "POST", "/api/fortune", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for {}, got %d", st)
		}
		var resp map[string]string
		_ = json.Unmarshal(body, &resp)
		if resp["error"] == "" {
			t.Fatalf("expected error field, got %s", string(body))
		}
	}

	{
		st, body, _ := doRaw(t, ts.URL, "POST", "/api/fortune", "not json")
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for non-json, got %d", st)
		}
		if strings.TrimSpace(string(body)) != `{"error":"Invalid JSON"}` {
			t.Fatalf("unexpected body %s", string(body))
		}
	}
}

func TestHTTP_OpenAIProvider_EndToEnd(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	var calls atomic.Int32

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/v1/chat/completions" || r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		st := int(status.Load())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(st)
		if st == http.StatusOK {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  오늘은 산책 운이 좋아요!  "}}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer upstream.Close()

	client, err := openai.NewClient(openai.Config{APIKey: "sk-test", BaseURL: upstream.URL})
	if err != nil {
		t.Fatalf("openai client: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Completer: client,
		AITimeout: 2 * time.Second,
	}))
	defer ts.Close()

	// 1) proveedor responde bien
	{
		st, body, hdr := doReq(t, ts.URL, "POST", "/api/fortune", map[string]any{"name": "Choco", "breed": "Poodle"})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if hdr.Get("X-PawStars-Source") != "completion" {
			t.Fatalf("expected completion source, got %q", hdr.Get("X-PawStars-Source"))
		}
		if strings.TrimSpace(string(body)) != `{"fortune":"오늘은 산책 운이 좋아요!"}` {
			t.Fatalf("unexpected body %s", string(body))
		}
	}

	// 2) proveedor 500 => fallback, sigue siendo 200
	status.Store(http.StatusInternalServerError)
	{
		st, body, hdr := doReq(t, ts.URL, "POST", "/api/compatibility", map[string]any{
			"dogName":   "Bori",
			"dogBreed":  "Jindo",
			"ownerName": "Minji",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if hdr.Get("X-PawStars-Source") != "fallback" {
			t.Fatalf("expected fallback source, got %q", hdr.Get("X-PawStars-Source"))
		}
		var resp map[string]string
		_ = json.Unmarshal(body, &resp)
		if !strings.HasPrefix(resp["compatibility"], "💝 Bori × Minji 궁합") {
			t.Fatalf("unexpected compatibility: %q", resp["compatibility"])
		}
	}

	// 3) 400 no llama al proveedor
	before := calls.Load()
	if st, _, _ := doReq(t, ts.URL, "POST", "/api/compatibility", map[string]any{"dogName": "Bori"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
	if calls.Load() != before {
		t.Fatalf("provider called on invalid input")
	}
}

func TestHTTP_Zodiac(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body, _ := doReq(t, ts.URL, "GET", "/api/zodiac?date=2024-02-10&time=23:45", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var resp struct {
		Label string `json:"label"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Label != "진(辰) 용띠 / 자시(子時)" {
		t.Fatalf("unexpected label %q", resp.Label)
	}

	if st, _, _ := doReq(t, ts.URL, "GET", "/api/zodiac?date=yesterday", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", st)
	}
}

func TestHTTP_Results_SaveAndShare(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{PublicBaseURL: "https://pawstars.example"}))
	defer ts.Close()

	st, body, _ := doReq(t, ts.URL, "POST", "/api/results", map[string]any{
		"kind":      "compatibility",
		"text":      "💝 Bori × Minji 궁합\n총평: 좋아요",
		"dogName":   "Bori",
		"ownerName": "Minji",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}
	var created struct {
		ID       string `json:"id"`
		ShareURL string `json:"shareUrl"`
	}
	_ = json.Unmarshal(body, &created)
	if created.ID == "" {
		t.Fatalf("expected id in %s", string(body))
	}

	st, body, _ = doReq(t, ts.URL, "GET", "/api/results/"+created.ID+"/share", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 share, got %d", st)
	}
	var share map[string]string
	_ = json.Unmarshal(body, &share)
	if share["url"] != "https://pawstars.example/results/"+created.ID || share["url"] != created.ShareURL {
		t.Fatalf("unexpected share url %q", share["url"])
	}
	if share["description"] != "💝 Bori × Minji 궁합" {
		t.Fatalf("unexpected description %q", share["description"])
	}

	if st, _, _ := doReq(t, ts.URL, "GET", "/api/results/00000000-0000-4000-8000-000000000000", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
}

func TestHTTP_CORS_Preflight(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{CORSAllowedOrigins: []string{"http://localhost:3000"}}))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/fortune", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	if got := res.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body, _ := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if !strings.Contains(string(body), `"/api/fortune"`) {
		t.Fatalf("swagger doc missing /api/fortune")
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte, http.Header) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	return send(t, baseURL, method, path, rdr, body != nil)
}

func doRaw(t *testing.T, baseURL, method, path, raw string) (int, []byte, http.Header) {
	t.Helper()
	return send(t, baseURL, method, path, strings.NewReader(raw), true)
}

func send(t *testing.T, baseURL, method, path string, rdr io.Reader, isJSON bool) (int, []byte, http.Header) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody, res.Header
}
