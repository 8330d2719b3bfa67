package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/legenre/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/legenre/internal/config"
	"github.com/heartmarshall/legenre/internal/lexicon"
	"github.com/heartmarshall/legenre/internal/service/lookup"
	"github.com/heartmarshall/legenre/internal/transport/middleware"
	"github.com/heartmarshall/legenre/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// lexical index, wires the lookup service and serves HTTP until ctx is
// cancelled. A lexicon that cannot be loaded is fatal: Run returns before
// the listener starts.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	start := time.Now()
	index, stats, err := lexicon.LoadFile(ctx, cfg.Lexicon.Path)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	logger.Info("lexicon loaded",
		slog.String("path", cfg.Lexicon.Path),
		slog.Int("rows", stats.TotalRows),
		slog.Int("indexed", stats.Indexed),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("skipped_no_word", stats.SkippedNoWord),
		slog.Int("skipped_no_gender", stats.SkippedNoGender),
		slog.Int("words", stats.UniqueWords),
		slog.Duration("duration", time.Since(start)),
	)

	svc := lookup.NewService(logger, index)
	if !cfg.Fallback.Disabled {
		svc.SetFallback(wiktionary.NewProvider(cfg.Fallback, logger))
		logger.Info("wiktionary fallback enabled", slog.String("base_url", cfg.Fallback.BaseURL))
	}

	var limiter *middleware.RateLimiter
	if !cfg.RateLimit.Disabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(cfg, logger, index, svc, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newRouter registers the API, probes and optional static files behind the
// middleware chain. limiter may be nil.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	index *lexicon.Index,
	svc *lookup.Service,
	limiter *middleware.RateLimiter,
) http.Handler {
	lookupHandler := rest.NewLookupHandler(svc, logger)
	healthHandler := rest.NewHealthHandler(index, !cfg.Fallback.Disabled, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/lookup", lookupHandler.Lookup)
	mux.HandleFunc("GET /api/random", lookupHandler.Random)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	if cfg.Static.Dir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.Static.Dir)))
	}

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if limiter != nil {
		mws = append(mws, middleware.OnPrefix("/api/", limiter.Limit(cfg.RateLimit.RequestsPerMinute)))
	}

	return middleware.Chain(mws...)(mux)
}
