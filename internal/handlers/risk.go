package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trustshield/internal/charts"
	"trustshield/internal/repositories/cache"
	"trustshield/internal/services/dashboard"
	"trustshield/internal/services/risk"
	"trustshield/internal/utils/response"
	"trustshield/internal/validation"
)

type RiskHandler struct {
	session *dashboard.Session
	charts  *charts.Generator
	cache   *cache.ChartService
}

func NewRiskHandler(session *dashboard.Session, chartGen *charts.Generator, chartCache *cache.ChartService) *RiskHandler {
	return &RiskHandler{
		session: session,
		charts:  chartGen,
		cache:   chartCache,
	}
}

// Preview scores an amount without recording it
func (h *RiskHandler) Preview(c *fiber.Ctx) error {
	req, ok, err := parseAmountInput(c)
	if !ok {
		return err
	}

	assessment, err := h.session.Preview(req)
	if err != nil {
		return response.DomainError(c, err)
	}

	title, description := risk.LevelMessage(assessment.Level)
	return response.Success(c, title, fiber.Map{
		"assessment":  assessment,
		"meterBand":   risk.MeterBand(assessment.RiskScore),
		"description": description,
	})
}

// GetMeter renders the risk meter gauge for a score
func (h *RiskHandler) GetMeter(c *fiber.Ctx) error {
	score := c.QueryInt("score", -1)

	v := validation.New()
	v.Range("score", float64(score), validation.MinRiskScore, validation.MaxRiskScore)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	key := cache.ChartKey(h.session.ID(), "meter", score)
	png, hit, err := h.cache.GetOrRender(c.Context(), key, func() ([]byte, error) {
		return h.charts.RiskMeter(score)
	})
	if err != nil {
		return response.ServerError(c, "Failed to render risk meter")
	}
	return sendPNG(c, png, hit)
}
