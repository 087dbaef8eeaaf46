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
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/maplecrest/listings-api/internal/cache"
	"github.com/maplecrest/listings-api/internal/config"
	"github.com/maplecrest/listings-api/internal/domain/listing"
	logpkg "github.com/maplecrest/listings-api/internal/logger"
	"github.com/maplecrest/listings-api/internal/metrics"
	listingrepo "github.com/maplecrest/listings-api/internal/repository/listing"
	mediarepo "github.com/maplecrest/listings-api/internal/repository/media"
	officerepo "github.com/maplecrest/listings-api/internal/repository/office"
	"github.com/maplecrest/listings-api/internal/storage"
	"github.com/maplecrest/listings-api/internal/storage/redis"
	chiTransport "github.com/maplecrest/listings-api/internal/transport/chi"
	featureduc "github.com/maplecrest/listings-api/internal/usecase/featured"
	healthuc "github.com/maplecrest/listings-api/internal/usecase/health"
	listingsuc "github.com/maplecrest/listings-api/internal/usecase/listings"
	mediauc "github.com/maplecrest/listings-api/internal/usecase/media"
	searchuc "github.com/maplecrest/listings-api/internal/usecase/search"
	"github.com/maplecrest/listings-api/internal/version"
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

	logger.Info("Starting listings API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	ctx := context.Background()

	pool, err := storage.NewPool(ctx, storage.Config{
		DSN:      cfg.Database.DSN,
		MaxConns: int32(cfg.Database.MaxConns),
	})
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := storage.WaitForReady(ctx, pool, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register cache metrics explicitly (no init())
	metrics.RegisterCacheMetrics()

	// Result cache is optional: a disabled cache is a first-class value,
	// not a nil pointer.
	resultCache := cache.Disabled()
	var cacheStore *redis.Store
	if cfg.Cache.Enabled {
		cacheStore, err = redis.NewStore(redis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer cacheStore.Close()

		resultCache = cache.New(cacheStore, cache.TTLs{
			Search: time.Duration(cfg.Cache.SearchTTLSec) * time.Second,
			Detail: time.Duration(cfg.Cache.DetailTTLSec) * time.Second,
			Map:    time.Duration(cfg.Cache.MapTTLSec) * time.Second,
		})
		logger.Info("Result cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Create repositories (one per property table)
	resRepo := listingrepo.NewRepository(pool, listing.Residential)
	comRepo := listingrepo.NewRepository(pool, listing.Commercial)
	mediaRepo := mediarepo.NewRepository(pool)
	officeRepo := officerepo.NewRepository(pool)

	// Create use case services
	searchSvc := searchuc.New(resRepo, comRepo, mediaRepo)
	listingsSvc := listingsuc.New(resRepo, comRepo, mediaRepo, mediaRepo)
	mediaSvc := mediauc.New(mediaRepo, listingsSvc)
	featuredSvc := featureduc.New(resRepo, comRepo, officeRepo, mediaRepo)

	// Pass nil interface (not typed nil pointer!) if the cache is disabled.
	// Go gotcha: (*redis.Store)(nil) wrapped in CachePinger != nil.
	var cachePinger healthuc.CachePinger
	if cacheStore != nil {
		cachePinger = cacheStore
	}
	healthSvc := healthuc.New(pool, cachePinger)

	// Create chi server
	server := chiTransport.NewServer(
		searchSvc, listingsSvc, mediaSvc, featuredSvc, healthSvc,
		resultCache, cfg.Pagination, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(httprate.LimitByIP(cfg.HTTP.RateLimitPerMin, time.Minute))
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

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
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
