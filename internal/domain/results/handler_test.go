package results

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func doReq(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, newTestService(newTestRepo()))
	return r
}

func TestHandlers_CreateGetShare(t *testing.T) {
	h := newTestRouter()

	rr := doReq(t, h, http.MethodPost, "/api/results", map[string]any{
		"kind":    "fortune",
		"text":    "🐾 Choco (Poodle)의 오늘의 운세\n- 좋은 하루",
		"dogName": "Choco",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created resultResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Kind != KindFortune {
		t.Fatalf("unexpected body %+v", created)
	}
	if created.ShareURL != "https://pawstars.example/results/"+created.ID {
		t.Fatalf("unexpected shareUrl %q", created.ShareURL)
	}

	rr = doReq(t, h, http.MethodGet, "/api/results/"+created.ID, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rr.Code)
	}
	var got resultResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Text != created.Text || got.DogName != "Choco" {
		t.Fatalf("unexpected get body %+v", got)
	}

	rr = doReq(t, h, http.MethodGet, "/api/results/"+created.ID+"/share", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("share: expected 200, got %d", rr.Code)
	}
	var sh shareResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &sh); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sh.Title != ShareTitle || sh.Description != "🐾 Choco (Poodle)의 오늘의 운세" || sh.URL != created.ShareURL {
		t.Fatalf("unexpected share body %+v", sh)
	}
}

func TestHandlers_NotFound(t *testing.T) {
	h := newTestRouter()

	for _, path := range []string{
		"/api/results/does-not-exist",
		"/api/results/5f0c6f1e-8f5c-4a57-9a38-6f2b3c1d9e10",
		"/api/results/5f0c6f1e-8f5c-4a57-9a38-6f2b3c1d9e10/share",
	} {
		rr := doReq(t, h, http.MethodGet, path, nil)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rr.Code)
		}
		if rr.Body.String() != "{\"error\":\"result not found\"}\n" {
			t.Fatalf("%s: unexpected body %q", path, rr.Body.String())
		}
	}
}

func TestHandlers_CreateBadRequest(t *testing.T) {
	h := newTestRouter()

	cases := map[string]any{
		"invalid json":  "{",
		"trailing text": `{"kind":"fortune","text":"x","dogName":"Choco"} extra`,
		"unknown kind":  map[string]any{"kind": "tarot", "text": "x", "dogName": "Choco"},
		"missing owner": map[string]any{"kind": "compatibility", "text": "x", "dogName": "Choco"},
		"blank text":    map[string]any{"kind": "fortune", "text": "", "dogName": "Choco"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := doReq(t, h, http.MethodPost, "/api/results", body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
			}
			var e errorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &e); err != nil || e.Error == "" {
				t.Fatalf("expected error body, got %q", rr.Body.String())
			}
		})
	}
}
