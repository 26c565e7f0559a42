package stats

import (
	"math"

	"github.com/shopspring/decimal"

	"trustshield/internal/models"
)

// amountPlaces is the minor-unit precision of the internal currency.
const amountPlaces = 2

// Initialize computes the aggregates of a full transaction set.
func Initialize(transactions []models.Transaction) models.AggregateStats {
	stats := models.AggregateStats{
		TotalTransactions: len(transactions),
		TotalAmount:       decimal.Zero,
	}
	for _, t := range transactions {
		if t.Flagged {
			stats.FlaggedTransactions++
		}
		stats.RiskScoreSum += t.RiskScore
		stats.TotalAmount = stats.TotalAmount.Add(t.Amount)
	}
	stats.AvgRiskScore = roundedMean(stats.RiskScoreSum, stats.TotalTransactions)
	stats.TotalAmount = stats.TotalAmount.Round(amountPlaces)
	return stats
}

// ApplyNewTransaction folds one more transaction into stats in constant time
// and returns the result. The input is not modified.
//
// The average is round((avg*n + score) / (n+1)). When stats carries the exact
// score sum it is used instead of avg*n, so repeated updates do not drift from
// a full recomputation. A zero sum with a non-zero average marks the sum as
// unknown; see models.AggregateStats.RiskScoreSum.
func ApplyNewTransaction(stats models.AggregateStats, t models.Transaction) models.AggregateStats {
	sum := stats.RiskScoreSum
	if sum == 0 && stats.AvgRiskScore != 0 {
		sum = stats.AvgRiskScore * stats.TotalTransactions
	}
	sum += t.RiskScore

	next := models.AggregateStats{
		TotalTransactions:   stats.TotalTransactions + 1,
		FlaggedTransactions: stats.FlaggedTransactions,
		TotalAmount:         stats.TotalAmount.Add(t.Amount).Round(amountPlaces),
		RiskScoreSum:        sum,
	}
	if t.Flagged {
		next.FlaggedTransactions++
	}
	next.AvgRiskScore = roundedMean(sum, next.TotalTransactions)
	return next
}

func roundedMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
