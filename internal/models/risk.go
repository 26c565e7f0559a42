package models

// RiskLevel buckets a risk score for display.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment is the outcome of classifying a single transaction.
type RiskAssessment struct {
	RiskScore      int       `json:"riskScore"`
	Flagged        bool      `json:"flagged"`
	AnomalyDetails []string  `json:"anomalyDetails,omitempty"`
	Level          RiskLevel `json:"level"`
}
