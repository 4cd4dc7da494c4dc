package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pawstars-api/internal/platform/logger"
)

func newTestRouter(log logger.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestID)
	r.Use(AccessLog(log))
	r.Use(Recover(log))
	r.Use(CORS([]string{"https://pawstars.example"}))

	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})
	return r
}

func TestAccessLog_AndRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newTestRouter(logger.FromZap(zap.New(core)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "GET", ctx["method"])
	assert.Equal(t, "/ok", ctx["path"])
	assert.EqualValues(t, http.StatusTeapot, ctx["status"])
	assert.Equal(t, id, ctx["request_id"])
	assert.Equal(t, "http", ctx["module"])
}

func TestRecover_LogsAndReturnsJSON(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newTestRouter(logger.FromZap(zap.New(core)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())

	panics := logs.FilterMessage("panic recovered").All()
	require.Len(t, panics, 1)
	assert.Equal(t, "kaboom", panics[0].ContextMap()["panic"])

	// el access log ve el 500 escrito por Recover
	errs := logs.FilterMessage("request").FilterLevelExact(zapcore.ErrorLevel).All()
	assert.Len(t, errs, 1)
}

func TestCORS_Preflight(t *testing.T) {
	r := newTestRouter(logger.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set("Origin", "https://pawstars.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://pawstars.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
