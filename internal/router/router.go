package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "pawstars-api/internal/adapters/storage/memory"
	pg "pawstars-api/internal/adapters/storage/postgres"
	_ "pawstars-api/internal/docs"
	"pawstars-api/internal/domain/compatibility"
	"pawstars-api/internal/domain/fortune"
	"pawstars-api/internal/domain/results"
	"pawstars-api/internal/domain/zodiac"
	"pawstars-api/internal/middleware"
	"pawstars-api/internal/platform/logger"
	"pawstars-api/internal/platform/phrases"
	"pawstars-api/internal/ports/completion"
)

type Options struct {
	// Completer puede ser nil: todo sale por fallback.
	Completer completion.Completer
	AITimeout time.Duration

	// Opcional: si viene, resultados en Postgres. Si no, in-memory.
	DB *sql.DB

	Logger             logger.Logger
	Picker             *phrases.Picker
	PublicBaseURL      string
	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	picker := opts.Picker
	if picker == nil {
		picker = phrases.NewPicker()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS(opts.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var resultsRepo results.Repository
	if opts.DB != nil {
		resultsRepo = pg.NewResultsRepo(opts.DB)
	} else {
		resultsRepo = mem.NewResultRepo()
	}

	// Services por módulo
	fortuneSvc := fortune.NewService(fortune.Options{
		Completer: opts.Completer,
		Picker:    picker,
		Timeout:   opts.AITimeout,
		Logger:    log,
	})
	compatSvc := compatibility.NewService(compatibility.Options{
		Completer: opts.Completer,
		Picker:    picker,
		Timeout:   opts.AITimeout,
		Logger:    log,
	})
	resultsSvc := results.NewService(resultsRepo, opts.PublicBaseURL)

	// Rutas por módulo
	fortune.RegisterRoutes(r, fortuneSvc)
	compatibility.RegisterRoutes(r, compatSvc)
	zodiac.RegisterRoutes(r)
	results.RegisterRoutes(r, resultsSvc)

	return r
}
