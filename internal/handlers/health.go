package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trustshield/internal/repositories/cache"
	"trustshield/internal/services/dashboard"
)

type HealthHandler struct {
	session *dashboard.Session
	metrics *dashboard.CounterMetrics
	cache   *cache.ChartService
}

func NewHealthHandler(session *dashboard.Session, metrics *dashboard.CounterMetrics, chartCache *cache.ChartService) *HealthHandler {
	return &HealthHandler{session: session, metrics: metrics, cache: chartCache}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	cacheStatus := "connected"
	if err := h.cache.HealthCheck(c.Context()); err != nil {
		cacheStatus = err.Error()
	}

	body := fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"session": h.session.ID(),
		"services": fiber.Map{
			"chart_cache": cacheStatus,
		},
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	return c.JSON(body)
}
