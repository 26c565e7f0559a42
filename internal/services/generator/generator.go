package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"trustshield/internal/models"
	"trustshield/internal/services/risk"
)

// Sample value pools.
var (
	Merchants = []string{
		"Amazon", "Walmart", "Target", "Best Buy", "Apple Store",
		"Netflix", "Uber", "Starbucks", "Unknown Merchant",
	}
	Locations = []string{
		"New York, US", "London, UK", "San Francisco, US", "Tokyo, JP",
		"Moscow, RU", "Lagos, NG", "Mumbai, IN",
	}
)

const (
	minAmount       = 10.0
	amountSpan      = 990.0
	dateWindowDays  = 14
	completedShare  = 0.9
	minDailyVolume  = 50
	dailyVolumeSpan = 100
	maxDailyFraud   = 15.0
	maxFraudShare   = 0.2
)

// Generator produces demo transactions and chart data. It is not safe for
// concurrent use because it draws from a single *rand.Rand.
type Generator struct {
	rng    *rand.Rand
	now    func() time.Time
	policy *risk.DemoDataPolicy
}

// New creates a generator drawing from rng. A nil now defaults to time.Now.
func New(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		panic("rng is required")
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rng:    rng,
		now:    now,
		policy: risk.NewDemoDataPolicy(rng),
	}
}

// GenerateTransactions returns n sample transactions, newest first.
func (g *Generator) GenerateTransactions(n int) []models.Transaction {
	if n <= 0 {
		return []models.Transaction{}
	}

	now := g.now()
	transactions := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		transactions = append(transactions, g.transaction(now))
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

func (g *Generator) transaction(now time.Time) models.Transaction {
	assessment := g.policy.Assess()

	return models.Transaction{
		ID:             g.newID(),
		Amount:         decimal.NewFromFloat(g.rng.Float64()*amountSpan + minAmount).Round(2),
		Date:           now.AddDate(0, 0, -g.rng.Intn(dateWindowDays)),
		Merchant:       Merchants[g.rng.Intn(len(Merchants))],
		Location:       Locations[g.rng.Intn(len(Locations))],
		Status:         g.status(),
		Type:           models.Types[g.rng.Intn(len(models.Types))],
		CardLast4:      fmt.Sprintf("%04d", g.rng.Intn(10000)),
		RiskScore:      assessment.RiskScore,
		Flagged:        assessment.Flagged,
		AnomalyDetails: assessment.AnomalyDetails,
	}
}

func (g *Generator) status() models.TransactionStatus {
	if g.rng.Float64() < completedShare {
		return models.StatusCompleted
	}
	if g.rng.Float64() < 0.5 {
		return models.StatusPending
	}
	return models.StatusFailed
}

func (g *Generator) newID() string {
	u, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		u = uuid.New()
	}
	return models.NewTransactionID(u)
}

// GenerateDailyStats returns days+1 entries, one per calendar day ending
// today, oldest first.
func (g *Generator) GenerateDailyStats(days int) []models.DailyStat {
	if days < 0 {
		return []models.DailyStat{}
	}

	now := g.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := make([]models.DailyStat, 0, days+1)
	for i := days; i >= 0; i-- {
		transactions := g.rng.Intn(dailyVolumeSpan) + minDailyVolume
		ceiling := math.Min(maxDailyFraud, float64(transactions)*maxFraudShare)
		fraudulent := int(math.Floor(g.rng.Float64() * ceiling))

		stats = append(stats, models.DailyStat{
			Date:         today.AddDate(0, 0, -i).Format(models.DateLayout),
			Transactions: transactions,
			Fraudulent:   fraudulent,
		})
	}
	return stats
}
