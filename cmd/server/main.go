// Package main is the entry point for the WhatsApp dashboard HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/displaytime"
	"github.com/ppopeskul/wa-dashboard/internal/handler"
	"github.com/ppopeskul/wa-dashboard/internal/middleware"
	"github.com/ppopeskul/wa-dashboard/internal/scheduler"
	"github.com/ppopeskul/wa-dashboard/internal/service"
	"github.com/ppopeskul/wa-dashboard/internal/session"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	clock, err := displaytime.NewConverter(cfg.Display.Timezone)
	if err != nil {
		logger.Fatal("Failed to load display timezone", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, sweeper := setupSessionStore(ctx, cfg, logger)
	defer closeStore()

	// Each outbound call carries its own deadline.
	httpClient := &http.Client{}
	client := backend.NewClient(&cfg.Backend, httpClient, logger)
	sender := webhook.NewSender(&cfg.Webhook, httpClient, logger)

	svc := service.NewService(cfg, client, sender, store, clock, logger)
	sessions := session.NewManager(&cfg.Dashboard, cfg.Session.SessionTTL(), store, logger)
	h := handler.NewHandler(svc, sessions, logger, handler.WithMaxUploadBytes(cfg.Server.MaxUploadBytes()))

	router := setupRouter(h, sessions, &cfg.Middleware, logger)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.Middleware.AllowedOrigins
	if !cfg.Middleware.EnableCORS {
		corsConfig = nil
	}

	chain, stopChain := middleware.Chain(&middleware.Config{
		Logger:         logger,
		CORS:           corsConfig,
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: config.Seconds(cfg.Middleware.RequestTimeout),
	})
	defer stopChain()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      chain(router),
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  60 * time.Second,
	}

	logStartup(cfg, logger)

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	if sweeper != nil && sweeper.IsRunning() {
		if err := sweeper.Stop(); err != nil {
			logger.Error("Failed to stop session sweeper", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// setupSessionStore builds the configured store. The in-memory store gets a
// background sweeper for expired sessions; Redis expires keys itself.
func setupSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, func(), *scheduler.Scheduler) {
	ttl := cfg.Session.SessionTTL()

	if cfg.Session.Backend == config.SessionBackendRedis {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		closeFn := func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("Failed to close Redis connection", zap.Error(err))
			}
		}
		return session.NewRedisStore(redisClient, cfg.Session.KeyPrefix, ttl), closeFn, nil
	}

	store := session.NewMemoryStore(ttl)
	interval := time.Duration(cfg.Session.SweepInterval) * time.Minute
	sweeper := scheduler.NewScheduler(logger, "session-sweep", interval, store.Sweep)
	if err := sweeper.Start(ctx); err != nil {
		logger.Error("Failed to start session sweeper", zap.Error(err))
		return store, func() {}, nil
	}
	return store, func() {}, sweeper
}

func logStartup(cfg *config.Config, logger *zap.Logger) {
	logger.Info("Dashboard configuration",
		zap.String("api_base", cfg.Backend.BaseURL),
		zap.String("message_webhook", config.Truncate(cfg.Webhook.MessageURL, 50)),
		zap.String("file_webhook", config.Truncate(cfg.Webhook.FileURL, 50)),
		zap.String("dashboard_password", setOrNot(cfg.Dashboard.Password != "" || cfg.Dashboard.PasswordHash != "")),
		zap.String("session_backend", cfg.Session.Backend),
		zap.String("display_timezone", cfg.Display.Timezone),
		zap.Bool("guard_contact_update", cfg.Middleware.GuardContactUpdate),
	)
	if cfg.Webhook.MessageURL == "" {
		logger.Warn("MAKE_WEBHOOK_URL is not set, message sends will fail")
	}
	if cfg.Webhook.FileURL == "" {
		logger.Warn("MAKE_FILE_WEBHOOK_URL is not set, file sends will fail")
	}
}

func setOrNot(set bool) string {
	if set {
		return "SET"
	}
	return "NOT SET"
}
