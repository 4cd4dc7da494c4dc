package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pawstars-api/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer: mismo comportamiento, pero el panic
// va al logger estructurado y el cliente recibe JSON.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler se re-lanza, igual que chi
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"panic":      fmt.Sprint(rec),
					"path":       r.URL.Path,
					"request_id": chimw.GetReqID(r.Context()),
					"stack":      string(debug.Stack()),
				})

				if r.Header.Get("Connection") != "Upgrade" {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"internal error"}` + "\n"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
