// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"trustshield/internal/charts"
	"trustshield/internal/handlers"
	"trustshield/internal/middleware"
	"trustshield/internal/repositories/cache"
	"trustshield/internal/services/dashboard"
)

// Dependencies are the long-lived objects the handlers share.
type Dependencies struct {
	Session          *dashboard.Session
	Metrics          *dashboard.CounterMetrics
	Charts           *charts.Generator
	ChartCache       cache.ChartCache
	SubmitRateLimit  int
	SubmitRateWindow time.Duration
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	if deps.Charts == nil {
		deps.Charts = charts.NewGenerator()
	}
	if deps.ChartCache == nil {
		deps.ChartCache = cache.NewMemoryChartCache(cache.DefaultTTL, nil)
	}
	chartService := cache.NewChartService(deps.ChartCache)

	dashboardHandler := handlers.NewDashboardHandler(deps.Session, deps.Charts, chartService)
	transactionHandler := handlers.NewTransactionHandler(deps.Session)
	riskHandler := handlers.NewRiskHandler(deps.Session, deps.Charts, chartService)
	healthHandler := handlers.NewHealthHandler(deps.Session, deps.Metrics, chartService)

	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api", middleware.SessionHeader(deps.Session.ID()))

	dash := api.Group("/dashboard")
	dash.Get("/stats", dashboardHandler.GetStats)
	dash.Get("/alerts", dashboardHandler.GetAlerts)
	dash.Get("/daily-stats", dashboardHandler.GetDailyStats)
	dash.Get("/chart.png", dashboardHandler.GetChart)

	txns := api.Group("/transactions")
	txns.Get("", transactionHandler.ListTransactions)
	txns.Get("/:id", transactionHandler.GetTransaction)
	if deps.SubmitRateLimit > 0 {
		txns.Post("", middleware.RateLimit(deps.SubmitRateLimit, deps.SubmitRateWindow), transactionHandler.CreateTransaction)
	} else {
		txns.Post("", transactionHandler.CreateTransaction)
	}

	riskGroup := api.Group("/risk")
	riskGroup.Post("/preview", riskHandler.Preview)
	riskGroup.Get("/meter.png", riskHandler.GetMeter)
}
