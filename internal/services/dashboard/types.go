package dashboard

import (
	"time"

	"trustshield/internal/models"
)

// Default session configuration values
const (
	DefaultInitialTransactions = 50
	DefaultChartDays           = 30
	DefaultAlertLimit          = 5
	DefaultPageSize            = 5
)

// Labels of transactions entered through the dashboard.
const (
	ManualEntryMerchant = "Manual Entry"
	ManualEntryLocation = "Web Interface"
)

// SessionConfig controls the size of the demo data and listings.
type SessionConfig struct {
	InitialTransactions int
	ChartDays           int
	AlertLimit          int
	PageSize            int
	Clock               func() time.Time
}

// Classifier scores an amount given in the internal unit.
type Classifier interface {
	Classify(amount float64) (*models.RiskAssessment, error)
}

// DataGenerator seeds the session with sample data.
type DataGenerator interface {
	GenerateTransactions(n int) []models.Transaction
	GenerateDailyStats(days int) []models.DailyStat
}

// SubmitRequest is an amount typed by the user, in the given currency.
type SubmitRequest struct {
	Amount   float64
	Currency string
}

// SubmitResult is the stored transaction and how it was scored.
type SubmitResult struct {
	Transaction models.Transaction    `json:"transaction"`
	Assessment  models.RiskAssessment `json:"assessment"`
	Stats       models.AggregateStats `json:"stats"`
}

// TransactionPage is one page of the searchable transaction table.
type TransactionPage struct {
	Items []models.Transaction
	Total int
}
