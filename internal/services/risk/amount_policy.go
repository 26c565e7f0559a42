package risk

import (
	"trustshield/internal/models"
	"trustshield/internal/validation"
)

// Amount thresholds, in the internal currency unit.
const (
	HighAmountThreshold     = 1000.0
	ElevatedAmountThreshold = 500.0
	ModerateAmountThreshold = 250.0
)

// Scores assigned by the amount policy.
const (
	HighAmountScore     = 85
	ElevatedAmountScore = 65
	ModerateAmountScore = 45
	BaselineAmountScore = 25
)

// ReasonHighAmount is the only reason the amount policy ever reports.
const ReasonHighAmount = "Amount significantly higher than average"

// AmountThresholdPolicy scores user-submitted transactions from their amount alone.
// Only amounts above HighAmountThreshold are flagged.
type AmountThresholdPolicy struct{}

func NewAmountThresholdPolicy() *AmountThresholdPolicy {
	return &AmountThresholdPolicy{}
}

// Classify scores amount. It returns errors.ErrInvalidAmount for NaN,
// infinite, zero or negative input.
func (p *AmountThresholdPolicy) Classify(amount float64) (*models.RiskAssessment, error) {
	if err := validation.ValidateAmount(amount); err != nil {
		return nil, err
	}

	score := p.Score(amount)
	assessment := &models.RiskAssessment{
		RiskScore: score,
		Level:     LevelFor(score),
	}
	if amount > HighAmountThreshold {
		assessment.Flagged = true
		assessment.AnomalyDetails = []string{ReasonHighAmount}
	}
	return assessment, nil
}

// Score maps an amount onto the fixed score bands.
func (p *AmountThresholdPolicy) Score(amount float64) int {
	switch {
	case amount > HighAmountThreshold:
		return HighAmountScore
	case amount > ElevatedAmountThreshold:
		return ElevatedAmountScore
	case amount > ModerateAmountThreshold:
		return ModerateAmountScore
	default:
		return BaselineAmountScore
	}
}
