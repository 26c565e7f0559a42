// Package main is the entry point for the dashboard server.
// It builds the demo session, wires the chart cache and starts the HTTP API.
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"trustshield/internal/charts"
	"trustshield/internal/config"
	"trustshield/internal/repositories/cache"
	"trustshield/internal/routes"
	"trustshield/internal/services/currency"
	"trustshield/internal/services/dashboard"
	"trustshield/internal/services/generator"
	"trustshield/internal/services/risk"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	// Amounts go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	seed := cfg.DataSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Generating demo data with seed %d", seed)

	metrics := dashboard.NewCounterMetrics()
	session := dashboard.NewSession(
		dashboard.SessionConfig{
			InitialTransactions: cfg.InitialTransactions,
			ChartDays:           cfg.ChartDays,
			AlertLimit:          cfg.AlertLimit,
			PageSize:            cfg.PageSize,
		},
		generator.New(rand.New(rand.NewSource(seed)), nil),
		risk.NewAmountThresholdPolicy(),
		currency.NewConverter(cfg.INRPerUSD),
		metrics,
	)
	log.Printf("✅ Dashboard session %s ready", session.ID())

	chartCache := newChartCache(cfg)
	defer func() {
		if err := chartCache.Close(); err != nil {
			log.Printf("⚠️ Failed to close chart cache: %v", err)
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "TrustShield",
		DisableStartupMessage: config.IsProduction(),
	})

	app.Use(recover.New())

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Session:          session,
		Metrics:          metrics,
		Charts:           charts.NewGenerator(),
		ChartCache:       chartCache,
		SubmitRateLimit:  cfg.SubmitRateLimit,
		SubmitRateWindow: cfg.SubmitRateWindow,
	})

	// Start server
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		log.Printf("⚠️ Server stopped: %v", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Failed to shut down cleanly: %v", err)
		}
	}
}

// newChartCache connects to Redis when configured and falls back to an
// in-process cache when it is not reachable.
func newChartCache(cfg config.Config) cache.ChartCache {
	if !cfg.RedisEnabled() {
		log.Println("Redis not configured, caching charts in memory")
		return cache.NewMemoryChartCache(cfg.ChartCacheTTL, nil)
	}

	client := cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	redisCache := cache.NewRedisChartCache(client, cfg.ChartCacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.HealthCheck(ctx); err != nil {
		log.Printf("⚠️ %v, caching charts in memory", err)
		_ = client.Close()
		return cache.NewMemoryChartCache(cfg.ChartCacheTTL, nil)
	}

	log.Println("✅ Connected to Redis chart cache")
	return redisCache
}
