package risk

import "trustshield/internal/models"

// Level boundaries used when reporting a submitted transaction.
const (
	highLevelAbove   = 70
	mediumLevelAbove = 40
)

// Gauge bands of the risk meter.
const (
	meterMediumFrom = 30
	meterHighFrom   = 70
)

// CriticalScoreAbove marks alerts that need immediate attention.
const CriticalScoreAbove = 85

// LevelFor buckets a score for submission feedback.
func LevelFor(score int) models.RiskLevel {
	switch {
	case score > highLevelAbove:
		return models.RiskHigh
	case score > mediumLevelAbove:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// MeterBand buckets a score for the risk meter gauge. Its edges differ from
// LevelFor: 70 is high on the gauge but medium in submission feedback.
func MeterBand(score int) models.RiskLevel {
	switch {
	case score < meterMediumFrom:
		return models.RiskLow
	case score < meterHighFrom:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// IsCritical reports whether an alert should be highlighted.
func IsCritical(score int) bool {
	return score > CriticalScoreAbove
}

// LevelMessage returns the headline and description shown after a submission.
func LevelMessage(level models.RiskLevel) (title, description string) {
	switch level {
	case models.RiskHigh:
		return "High Risk Transaction", "This transaction has been flagged for review"
	case models.RiskMedium:
		return "Medium Risk Transaction", "Transaction will be monitored"
	default:
		return "Low Risk Transaction", "Transaction appears safe"
	}
}
