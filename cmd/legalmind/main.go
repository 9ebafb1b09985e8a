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
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/legalmind-ai/legalmind/internal/config"
	"github.com/legalmind-ai/legalmind/internal/corpus"
	logpkg "github.com/legalmind-ai/legalmind/internal/logger"
	"github.com/legalmind-ai/legalmind/internal/metrics"
	"github.com/legalmind-ai/legalmind/internal/rpc"
	"github.com/legalmind-ai/legalmind/internal/scoring"
	chiTransport "github.com/legalmind-ai/legalmind/internal/transport/chi"
	"github.com/legalmind-ai/legalmind/internal/usecase/analysis"
	healthuc "github.com/legalmind-ai/legalmind/internal/usecase/health"
	retrievaluc "github.com/legalmind-ai/legalmind/internal/usecase/retrieval"
	"github.com/legalmind-ai/legalmind/internal/version"
)

func main() {
	_ = godotenv.Load()

	envFlag := pflag.String("env", "", "environment name (overrides ENV)")
	corpusDir := pflag.String("corpus-dir", "", "corpus directory (overrides config)")
	pflag.Parse()

	env := config.GetEnv()
	if *envFlag != "" {
		env = *envFlag
	}

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if *corpusDir != "" {
		cfg.Corpus.Dir = *corpusDir
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting Legal Mind MCP server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("corpus_dir", cfg.Corpus.Dir),
	)

	// Register RPC metrics explicitly (no init())
	metrics.RegisterRPCMetrics()

	// Build the corpus before the router: the store must be fully
	// constructed before the first request is dispatched.
	store := corpus.New(cfg.Corpus.Dir, logger)

	weights := scoring.Weights{
		Phrase:            cfg.Retrieval.PhraseWeight,
		Term:              cfg.Retrieval.TermWeight,
		FallbackPrefixLen: cfg.Retrieval.FallbackPrefixLen,
	}
	retriever := retrievaluc.New(store, weights, logger)
	dispatcher := rpc.NewDispatcher(rpc.NewRegistry(), retriever, analysis.New(), logger)
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(dispatcher, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// SIGHUP swaps in a freshly loaded corpus snapshot.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			logger.Info("Reloading corpus on SIGHUP")
			store.Reload()
		}
	}()

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

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
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

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

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
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
