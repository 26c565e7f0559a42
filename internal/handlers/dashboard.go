package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"trustshield/internal/charts"
	"trustshield/internal/models"
	"trustshield/internal/repositories/cache"
	"trustshield/internal/services/dashboard"
	"trustshield/internal/services/risk"
	"trustshield/internal/utils/response"
	"trustshield/internal/validation"
)

type DashboardHandler struct {
	session *dashboard.Session
	charts  *charts.Generator
	cache   *cache.ChartService
}

func NewDashboardHandler(session *dashboard.Session, chartGen *charts.Generator, chartCache *cache.ChartService) *DashboardHandler {
	return &DashboardHandler{
		session: session,
		charts:  chartGen,
		cache:   chartCache,
	}
}

type statsView struct {
	models.AggregateStats
	FlaggedPercent float64 `json:"flaggedPercent"`
	TotalAmountINR string  `json:"totalAmountINR"`
}

type alertView struct {
	models.Transaction
	Critical bool `json:"critical"`
}

type dailyStatView struct {
	models.DailyStat
	FraudRate float64 `json:"fraudRate"`
}

// GetStats returns the stat card values
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats := h.session.Stats()
	return response.Success(c, "Dashboard stats retrieved successfully", statsView{
		AggregateStats: stats,
		FlaggedPercent: stats.FlaggedPercent(),
		TotalAmountINR: h.session.Converter().ToDisplay(stats.TotalAmount).StringFixed(2),
	})
}

// GetAlerts returns the highest-risk flagged transactions
func (h *DashboardHandler) GetAlerts(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v := validation.New()
		n, err := strconv.Atoi(raw)
		v.Check(err == nil, "limit", "must be an integer")
		v.Range("limit", float64(n), 1, validation.MaxAlertLimit)
		if !v.Valid() {
			return response.ValidationError(c, v.Errors)
		}
		limit = n
	}

	alerts := h.session.Alerts(limit)
	views := make([]alertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, alertView{Transaction: a, Critical: risk.IsCritical(a.RiskScore)})
	}
	return response.Success(c, "Alerts retrieved successfully", views)
}

// GetDailyStats returns the chart series with the per-day fraud rate
func (h *DashboardHandler) GetDailyStats(c *fiber.Ctx) error {
	daily := h.session.DailyStats()
	views := make([]dailyStatView, 0, len(daily))
	for _, d := range daily {
		views = append(views, dailyStatView{DailyStat: d, FraudRate: d.FraudRate()})
	}
	return response.Success(c, "Daily stats retrieved successfully", views)
}

// GetChart renders the daily fraud chart as PNG
func (h *DashboardHandler) GetChart(c *fiber.Ctx) error {
	key := cache.ChartKey(h.session.ID(), "daily")
	png, hit, err := h.cache.GetOrRender(c.Context(), key, func() ([]byte, error) {
		return h.charts.DailyStatsChart(h.session.DailyStats())
	})
	if err != nil {
		if errors.Is(err, charts.ErrNoData) {
			return response.NotFound(c, "No chart data available")
		}
		return response.ServerError(c, "Failed to render chart")
	}
	return sendPNG(c, png, hit)
}

func sendPNG(c *fiber.Ctx, png []byte, hit bool) error {
	c.Set(fiber.HeaderContentType, "image/png")
	if hit {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return c.Send(png)
}
