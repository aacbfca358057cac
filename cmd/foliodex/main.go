package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/laundromatzat/foliodex/internal/config"
	dbValkey "github.com/laundromatzat/foliodex/internal/db/valkey"
	"github.com/laundromatzat/foliodex/internal/domain"
	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/engine"
	logpkg "github.com/laundromatzat/foliodex/internal/logger"
	"github.com/laundromatzat/foliodex/internal/metrics"
	catalogrepo "github.com/laundromatzat/foliodex/internal/repository/catalog"
	chiTransport "github.com/laundromatzat/foliodex/internal/transport/chi"
	openaiChat "github.com/laundromatzat/foliodex/internal/transport/openai"
	assistantuc "github.com/laundromatzat/foliodex/internal/usecase/assistant"
	cataloguc "github.com/laundromatzat/foliodex/internal/usecase/catalog"
	healthuc "github.com/laundromatzat/foliodex/internal/usecase/health"
	searchuc "github.com/laundromatzat/foliodex/internal/usecase/search"
	"github.com/laundromatzat/foliodex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting foliodex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	ctx := context.Background()

	projects, pinger, cleanup, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	defer cleanup()

	logger.Info("Catalog loaded", zap.Int("projects", len(projects)))

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Create use case services
	catalogSvc := cataloguc.New(projects)
	searchSvc := searchuc.New(engine.New(projects), cfg.Search.MaxQueryLength)

	// Assistant is optional: no API key means the endpoint answers 501.
	var completer domain.Completer
	if cfg.Assistant.APIKey != "" {
		completer = openaiChat.NewCompleter(&openaiChat.Config{
			APIKey:  cfg.Assistant.APIKey,
			BaseURL: cfg.Assistant.BaseURL,
			Model:   cfg.Assistant.Model,
			Timeout: time.Duration(cfg.Assistant.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		logger.Info("Assistant enabled", zap.String("model", cfg.Assistant.Model))
	}
	assistantSvc := assistantuc.New(completer, searchSvc)

	healthSvc := healthuc.New(pinger, completer != nil)

	// Create chi server
	server := chiTransport.NewServer(catalogSvc, searchSvc, assistantSvc, healthSvc, cfg.Search.MaxLimit, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// catalogPinger reports catalog backend health.
type catalogPinger interface {
	Ping(ctx context.Context) error
}

// loadCatalog builds the configured catalog source, loads the full project
// list, and returns the backend pinger plus a cleanup for any open client.
func loadCatalog(
	ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger,
) ([]project.Project, catalogPinger, func(), error) {
	switch cfg.Source {
	case "file", "":
		src := catalogrepo.NewFileSource(cfg.Path)
		projects, err := src.Load(ctx)
		if err != nil {
			return nil, nil, func() {}, err
		}
		return projects, src, func() {}, nil

	case "valkey", "redis":
		store, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, nil, func() {}, err
		}

		if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
			store.Close()
			return nil, nil, func() {}, err
		}
		logger.Info("Connected to catalog store", zap.Strings("addrs", cfg.Addrs))

		src := catalogrepo.NewValkeySource(store, cfg.KeyPrefix)
		projects, err := src.Load(ctx)
		if err != nil {
			store.Close()
			return nil, nil, func() {}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
		return projects, src, store.Close, nil

	default:
		return nil, nil, func() {}, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
