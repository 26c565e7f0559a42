package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustshield/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestDailyStatsChart(t *testing.T) {
	g := NewGenerator()

	stats := []models.DailyStat{
		{Date: "2026-10-13", Transactions: 120, Fraudulent: 8},
		{Date: "2026-10-14", Transactions: 75, Fraudulent: 3},
		{Date: "2026-10-15", Transactions: 98, Fraudulent: 11},
	}

	png, err := g.DailyStatsChart(stats)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestDailyStatsChart_Errors(t *testing.T) {
	g := NewGenerator()

	_, err := g.DailyStatsChart(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = g.DailyStatsChart([]models.DailyStat{{Date: "2026-10-15", Transactions: 60}})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = g.DailyStatsChart([]models.DailyStat{
		{Date: "15/10/2026", Transactions: 60},
		{Date: "2026-10-16", Transactions: 70},
	})
	assert.Error(t, err)
}

func TestRiskMeter(t *testing.T) {
	g := NewGenerator()

	for _, score := range []int{0, 15, 45, 70, 99, 100, 140} {
		png, err := g.RiskMeter(score)
		require.NoError(t, err, "score %d", score)
		assert.True(t, bytes.HasPrefix(png, pngMagic), "score %d", score)
	}
}
