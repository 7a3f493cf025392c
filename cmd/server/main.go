package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/aggregate"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/app"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/cache"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/classifier"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/config"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/database"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/logging"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/metrics"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/server"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/store"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/version"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupRepository picks the persistent store when DATABASE_URL is set and
// falls back to the in-memory store otherwise.
func setupRepository(cfg *config.Config) (domain.FeedbackRepository, *pgxpool.Pool) {
	if cfg.DatabaseURL == "" {
		slog.Info("No DATABASE_URL configured, using in-memory store")
		return store.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return database.NewFeedbackRepo(pool), pool
}

// setupCache connects the optional Redis summary cache.
func setupCache(cfg *config.Config) (*cache.SummaryCache, *goredis.Client) {
	if cfg.RedisURL == "" {
		slog.Info("No REDIS_URL configured, summary caching disabled")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	return cache.NewSummaryCache(client, cfg.SummaryCacheTTL), client
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	build := version.Get()
	metrics.BuildInfo.WithLabelValues(build.Version, build.Commit, build.GoVersion).Set(1)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", build.Version)

	repo, pool := setupRepository(cfg)
	if pool != nil {
		defer pool.Close()
	}

	summaryCache, redisClient := setupCache(cfg)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	trendWindow := time.Duration(cfg.TrendWindowDays) * 24 * time.Hour
	engine := aggregate.New(clock, trendWindow)

	// Pass nil explicitly when no cache is configured to avoid a typed-nil
	// interface inside the service.
	var appSvc *app.Service
	if summaryCache != nil {
		appSvc = app.NewService(repo, classifier.NewDefault(), engine, summaryCache, clock)
	} else {
		appSvc = app.NewService(repo, classifier.NewDefault(), engine, nil, clock)
	}

	srv := server.NewServer(cfg, appSvc, pool, redisClient)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
