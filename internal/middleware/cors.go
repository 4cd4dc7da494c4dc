package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS para el front (Next.js) que llama a /api/* desde otro origen.
// Sin origins => "*".
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "X-PawStars-Source"},
		MaxAge:         300,
	})
}
