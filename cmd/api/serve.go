package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pawstars-api/internal/adapters/completion/gemini"
	"pawstars-api/internal/adapters/completion/openai"
	pg "pawstars-api/internal/adapters/storage/postgres"
	"pawstars-api/internal/platform/config"
	"pawstars-api/internal/platform/logger"
	"pawstars-api/internal/ports/completion"
	"pawstars-api/internal/router"
)

const (
	shutdownTimeout = 10 * time.Second

	// el timeout del http.Client va por encima del de Generate: el vencimiento
	// tiene que llegar como deadline del ctx (reason=timeout), no como error de transporte
	clientTimeoutMargin = 2 * time.Second
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, err := buildCompleter(ctx, cfg, log)
	if err != nil {
		return err
	}

	db := openDB(ctx, cfg, log)
	if db != nil {
		defer db.Close()
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Completer:          completer,
			AITimeout:          cfg.AITimeout(),
			DB:                 db,
			Logger:             log,
			PublicBaseURL:      cfg.Server.PublicBaseURL,
			CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		}),
		ReadTimeout: 5 * time.Second,
		// tiene que cubrir el timeout del proveedor + el fallback
		WriteTimeout: cfg.AITimeout() + 5*time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"provider": completion.ProviderName(completer),
			"storage":  storageName(db),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", map[string]any{"error": err})
		return err
	}
	return nil
}

// buildCompleter devuelve nil (interfaz nil, no puntero nil) cuando no hay API key:
// el servicio responde solo con fallback.
func buildCompleter(ctx context.Context, cfg *config.Config, log logger.Logger) (completion.Completer, error) {
	key := cfg.APIKey()
	if key == "" {
		log.Warn("no API key configured, serving fallback text only", map[string]any{"provider": cfg.AI.Provider})
		return nil, nil
	}

	switch cfg.AI.Provider {
	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  key,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		c, err := openai.NewClient(openai.Config{
			APIKey:  key,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
			Timeout: cfg.AITimeout() + clientTimeoutMargin,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// openDB: si Postgres no responde seguimos en memoria, como en dev.
func openDB(ctx context.Context, cfg *config.Config, log logger.Logger) *sql.DB {
	if cfg.Database.DSN == "" {
		return nil
	}

	db, err := pg.Open(cfg.Database.DSN)
	if err != nil {
		log.Warn("postgres unavailable, using in-memory results", map[string]any{"error": err})
		return nil
	}

	mctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pg.Migrate(mctx, db); err != nil {
		log.Warn("postgres migrate failed, using in-memory results", map[string]any{"error": err})
		_ = db.Close()
		return nil
	}
	return db
}

func storageName(db *sql.DB) string {
	if db == nil {
		return "memory"
	}
	return "postgres"
}
