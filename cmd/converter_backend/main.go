package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/SscSPs/currency_converter/internal/handlers"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_converter/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title Currency Converter API
// @version 1.0
// @description Currencies, dated exchange-rate quotations and as-of-date conversion.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		Ping:     cfg.EnableDBCheck,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool, logger)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.NewHTTPMetrics(prometheus.DefaultRegisterer).Middleware(),
	)

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}
