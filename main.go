package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"femaqua-be/internal/cache"
	"femaqua-be/internal/config"
	"femaqua-be/internal/database"
	"femaqua-be/internal/logger"
	"femaqua-be/internal/metrics"
	"femaqua-be/internal/repository"
	"femaqua-be/internal/routes"
	"femaqua-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logger.Get()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseURL, cfg.DBConnectRetries)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Token bindings live in Postgres unless Redis is selected
	var tokenRepo repository.TokenRepository
	switch cfg.TokenStore {
	case config.TokenStoreRedis:
		cacheClient, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer cacheClient.Close()
		tokenRepo = repository.NewRedisTokenRepository(cacheClient)
		log.Info("token store: redis")
	default:
		tokenRepo = repository.NewTokenRepository(db)
		log.Info("token store: postgres")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	toolRepo := repository.NewToolRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo, cfg.BcryptCost, cfg.TokenTTL())
	toolService := service.NewToolService(toolRepo)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "femaqua"),
	)

	gin.SetMode(gin.ReleaseMode)
	router, stopLimiters := routes.Setup(routes.Deps{
		Config:      cfg,
		AuthService: authService,
		ToolService: toolService,
		Metrics:     metrics.New(registry),
		Gatherer:    registry,
		Logger:      log,
	})
	defer stopLimiters()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
