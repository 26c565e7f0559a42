package models

import (
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used by DailyStat.
const DateLayout = "2006-01-02"

// DailyStat is one point of the daily fraud chart.
type DailyStat struct {
	Date         string `json:"date"`
	Transactions int    `json:"transactions"`
	Fraudulent   int    `json:"fraudulent"`
}

// FraudRate returns the share of fraudulent transactions as a percentage.
func (d DailyStat) FraudRate() float64 {
	if d.Transactions <= 0 {
		return 0
	}
	return float64(d.Fraudulent) / float64(d.Transactions) * 100
}

// AggregateStats are the running counters shown on the dashboard stat cards.
type AggregateStats struct {
	TotalTransactions   int             `json:"totalTransactions"`
	FlaggedTransactions int             `json:"flaggedTransactions"`
	AvgRiskScore        int             `json:"avgRiskScore"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`

	// RiskScoreSum is the exact sum behind AvgRiskScore. Scores are never
	// negative, so a true sum of zero implies AvgRiskScore == 0. A zero sum
	// next to a non-zero average therefore means the sum is unknown (stats
	// built by hand), and it is derived from the rounded average instead.
	RiskScoreSum int `json:"-"`
}

// FlaggedPercent returns flagged transactions as a percentage of the total.
func (s AggregateStats) FlaggedPercent() float64 {
	if s.TotalTransactions == 0 {
		return 0
	}
	return float64(s.FlaggedTransactions) / float64(s.TotalTransactions) * 100
}
