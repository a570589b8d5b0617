package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/smartcity/weatherlookup/internal/config"
	"github.com/smartcity/weatherlookup/internal/delivery/http"
	"github.com/smartcity/weatherlookup/internal/logger"
	"github.com/smartcity/weatherlookup/internal/metrics"
	"github.com/smartcity/weatherlookup/internal/repository/postgres"
	"github.com/smartcity/weatherlookup/internal/service"
)

func main() {
	log := logger.GetLogger()
	defer logger.Close()

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Dependency Injection: Repositories
	var historyRepo service.SearchLogRepository = postgres.NewMockRepository(cfg.HistoryLimit)
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := connectHistory(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Warnw("Could not connect to database, keeping search history in memory", "error", err)
		} else {
			defer pool.Close()
			historyRepo = postgres.NewPostgresRepository(pool)
			log.Infow("Connected to PostgreSQL")
		}
	}

	// Dependency Injection: Services
	weatherSvc, err := service.NewWeatherServiceFromConfig(cfg.Weather, m)
	if err != nil {
		log.Fatalw("Failed to build weather service", "error", err)
	}
	searchSvc := service.NewSearchService(weatherSvc, historyRepo, m)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Weather Lookup API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Weather.RequestTimeout + 5*time.Second,
		ErrorHandler: http.ErrorHandler,

		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	handler := http.NewHandler(searchSvc, cfg.Weather.DefaultCity, cfg.HistoryLimit)
	http.SetupRoutes(app, handler, registry)

	// Graceful shutdown
	go func() {
		log.Infow("Server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalw("Server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}
	searchSvc.WaitBackground()
	log.Infow("Server exited gracefully")
}

// connectHistory opens the pool and makes sure the search_logs table exists.
func connectHistory(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := postgres.NewPostgresRepository(pool).EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
