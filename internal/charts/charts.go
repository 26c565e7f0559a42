package charts

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"trustshield/internal/models"
	"trustshield/internal/services/risk"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to chart")

var (
	totalColor  = drawing.ColorFromHex("0A2463")
	fraudColor  = drawing.ColorFromHex("D9534F")
	emptyColor  = drawing.ColorFromHex("E5E7EB")
	bandColours = map[models.RiskLevel]drawing.Color{
		models.RiskLow:    drawing.ColorFromHex("22C55E"),
		models.RiskMedium: drawing.ColorFromHex("F59E0B"),
		models.RiskHigh:   drawing.ColorFromHex("EF4444"),
	}
)

// Generator renders dashboard charts as PNG images.
type Generator struct {
	Width  int
	Height int
}

func NewGenerator() *Generator {
	return &Generator{Width: 1200, Height: 600}
}

// DailyStatsChart plots total and fraudulent transactions per day.
// At least two days are needed to draw a line.
func (g *Generator) DailyStatsChart(stats []models.DailyStat) ([]byte, error) {
	if len(stats) < 2 {
		return nil, ErrNoData
	}

	xValues := make([]time.Time, 0, len(stats))
	totals := make([]float64, 0, len(stats))
	fraudulent := make([]float64, 0, len(stats))
	for _, s := range stats {
		day, err := time.Parse(models.DateLayout, s.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid chart date %q: %w", s.Date, err)
		}
		xValues = append(xValues, day)
		totals = append(totals, float64(s.Transactions))
		fraudulent = append(fraudulent, float64(s.Fraudulent))
	}

	graph := chart.Chart{
		Width:  g.Width,
		Height: g.Height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 02"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total Transactions",
				XValues: xValues,
				YValues: totals,
				Style: chart.Style{
					StrokeColor: totalColor,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Fraudulent Transactions",
				XValues: xValues,
				YValues: fraudulent,
				Style: chart.Style{
					StrokeColor: fraudColor,
					StrokeWidth: 2,
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize:  12,
			FontColor: chart.ColorBlack,
		}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render daily stats chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// RiskMeter draws a gauge filled up to score, coloured by its meter band.
// Scores outside 0..100 are clamped.
func (g *Generator) RiskMeter(score int) ([]byte, error) {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	band := risk.MeterBand(score)
	values := make([]chart.Value, 0, 2)
	if score > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("Risk %d", score),
			Value: float64(score),
			Style: chart.Style{
				FillColor:   bandColours[band],
				StrokeColor: chart.ColorWhite,
				FontSize:    14,
				FontColor:   chart.ColorBlack,
			},
		})
	}
	if score < 100 {
		values = append(values, chart.Value{
			Label: " ",
			Value: float64(100 - score),
			Style: chart.Style{
				FillColor:   emptyColor,
				StrokeColor: chart.ColorWhite,
			},
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("%s risk", band),
		Width:  400,
		Height: 400,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render risk meter: %w", err)
	}
	return buffer.Bytes(), nil
}
