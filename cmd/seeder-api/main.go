package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmrzaf/seeder/internal/api"
	"github.com/mmrzaf/seeder/internal/app"
	"github.com/mmrzaf/seeder/internal/config"
	"github.com/mmrzaf/seeder/internal/infra/repos/runs"
	"github.com/mmrzaf/seeder/internal/infra/repos/schemas"
	"github.com/mmrzaf/seeder/internal/logging"
	"github.com/mmrzaf/seeder/internal/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger("error").Errorw("startup.failed", map[string]any{"error": err.Error(), "stage": "config"})
		os.Exit(1)
	}

	schemasDir := flag.String("schemas-dir", cfg.SchemasDir, "Schemas directory")
	historyDB := flag.String("history-db", cfg.HistoryDB, "Run history database (SQLite path or postgres:// URL)")
	bindAddr := flag.String("bind", cfg.BindAddr, "Bind address")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	maxCount := flag.Int("max-count", cfg.MaxCount, "Maximum records per request")
	flag.Parse()

	base := logging.NewLogger(*logLevel)
	defer func() { _ = base.Sync() }()
	logger := base.WithComponent("api_main")

	seeder := app.NewSeeder(
		registry.DefaultGeneratorRegistry(),
		schemas.NewFileRepository(*schemasDir),
		nil,
		base,
		cfg.DefaultCount,
	)
	if *historyDB != "" {
		repo, err := runs.Open(*historyDB)
		if err != nil {
			logger.Errorw("startup.failed", map[string]any{"error": err.Error(), "stage": "init_history"})
			os.Exit(1)
		}
		defer repo.Close()
		seeder.SetHistory(repo)
	}

	mux := http.NewServeMux()
	api.NewHandler(seeder, *maxCount, base).Routes(mux)

	srv := &http.Server{
		Addr:              *bindAddr,
		Handler:           loggingMiddleware(base.WithComponent("http"), mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("startup.listening", map[string]any{"bind": *bindAddr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("startup.failed", map[string]any{"error": err.Error(), "stage": "listen"})
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Infow("shutdown.started", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("shutdown.failed", map[string]any{"error": err.Error()})
		}
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		fields := map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"duration_ms": time.Since(started).Milliseconds(),
			"request_id":  sw.Header().Get("X-Request-ID"),
		}
		if sw.status >= 500 {
			logger.Errorw("request.completed", fields)
			return
		}
		if sw.status >= 400 {
			logger.Warnw("request.completed", fields)
			return
		}
		logger.Infow("request.completed", fields)
	})
}
