package stats

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"trustshield/internal/models"
	"trustshield/internal/services/generator"
)

func txn(score int, amount string, flagged bool) models.Transaction {
	return models.Transaction{
		RiskScore: score,
		Amount:    decimal.RequireFromString(amount),
		Flagged:   flagged,
	}
}

func TestInitialize(t *testing.T) {
	got := Initialize([]models.Transaction{
		txn(10, "100.10", false),
		txn(85, "1200.00", true),
		txn(31, "50.255", false),
	})

	assert.Equal(t, 3, got.TotalTransactions)
	assert.Equal(t, 1, got.FlaggedTransactions)
	assert.Equal(t, 42, got.AvgRiskScore) // 126 / 3
	assert.Equal(t, "1350.36", got.TotalAmount.StringFixed(2))
}

func TestInitialize_Empty(t *testing.T) {
	got := Initialize(nil)

	assert.Equal(t, 0, got.TotalTransactions)
	assert.Equal(t, 0, got.AvgRiskScore)
	assert.True(t, got.TotalAmount.IsZero())
}

func TestApplyNewTransaction_Scenario(t *testing.T) {
	start := models.AggregateStats{
		TotalTransactions:   10,
		AvgRiskScore:        50,
		FlaggedTransactions: 1,
		TotalAmount:         decimal.NewFromInt(5000),
	}

	got := ApplyNewTransaction(start, txn(100, "500", true))

	assert.Equal(t, 11, got.TotalTransactions)
	assert.Equal(t, 55, got.AvgRiskScore)
	assert.Equal(t, 2, got.FlaggedTransactions)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(5500)))

	// the input value is left as it was
	assert.Equal(t, 10, start.TotalTransactions)
	assert.Equal(t, 50, start.AvgRiskScore)
}

func TestApplyNewTransaction_ScoreSumSource(t *testing.T) {
	tests := []struct {
		name    string
		start   models.AggregateStats
		score   int
		wantAvg int
		wantSum int
	}{
		{
			// 3 scores summing to 4 average 1.33; avg*n would say 3
			name:    "exact sum wins over rounded average",
			start:   models.AggregateStats{TotalTransactions: 3, AvgRiskScore: 1, RiskScoreSum: 4},
			score:   0,
			wantAvg: 1,
			wantSum: 4,
		},
		{
			name:    "missing sum is derived from the average",
			start:   models.AggregateStats{TotalTransactions: 4, AvgRiskScore: 30},
			score:   70,
			wantAvg: 38,
			wantSum: 190,
		},
		{
			name:    "all-zero history stays exact",
			start:   Initialize([]models.Transaction{txn(0, "5", false), txn(0, "5", false)}),
			score:   3,
			wantAvg: 1,
			wantSum: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyNewTransaction(tt.start, txn(tt.score, "1", false))
			assert.Equal(t, tt.wantAvg, got.AvgRiskScore)
			assert.Equal(t, tt.wantSum, got.RiskScoreSum)
		})
	}
}

func TestApplyNewTransaction_UnflaggedKeepsFlaggedCount(t *testing.T) {
	got := ApplyNewTransaction(Initialize(nil), txn(25, "12.34", false))

	assert.Equal(t, 1, got.TotalTransactions)
	assert.Equal(t, 0, got.FlaggedTransactions)
	assert.Equal(t, 25, got.AvgRiskScore)
	assert.Equal(t, "12.34", got.TotalAmount.StringFixed(2))
}

func TestApplyNewTransaction_MatchesRecomputation(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	now := func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	transactions := generator.New(rng, now).GenerateTransactions(500)

	running := Initialize(nil)
	sumScores := 0
	for i, tx := range transactions {
		running = ApplyNewTransaction(running, tx)
		sumScores += tx.RiskScore

		prefix := transactions[:i+1]
		full := Initialize(prefix)
		direct := math.Round(float64(sumScores) / float64(i+1))

		assert.InDelta(t, direct, float64(running.AvgRiskScore), 1, "prefix %d", i+1)
		assert.Equal(t, full.TotalTransactions, running.TotalTransactions)
		assert.Equal(t, full.FlaggedTransactions, running.FlaggedTransactions)
		assert.True(t, full.TotalAmount.Equal(running.TotalAmount), "prefix %d", i+1)
	}
}

func TestApplyNewTransaction_FromInitializedSet(t *testing.T) {
	base := []models.Transaction{txn(10, "10", false), txn(20, "20", false)}
	added := txn(90, "2000", true)

	incremental := ApplyNewTransaction(Initialize(base), added)
	full := Initialize(append(base, added))

	assert.Equal(t, full.TotalTransactions, incremental.TotalTransactions)
	assert.Equal(t, full.FlaggedTransactions, incremental.FlaggedTransactions)
	assert.Equal(t, full.AvgRiskScore, incremental.AvgRiskScore)
	assert.Equal(t, 40, incremental.AvgRiskScore)
	assert.True(t, full.TotalAmount.Equal(incremental.TotalAmount))
}
