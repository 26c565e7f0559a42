package validation

const (
	// Risk score bounds
	MinRiskScore = 0
	MaxRiskScore = 100

	// Listing limits
	MaxPageSize   = 100
	MaxAlertLimit = 50
)
