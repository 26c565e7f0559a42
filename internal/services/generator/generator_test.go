package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustshield/internal/models"
	"trustshield/internal/services/risk"
)

var fixedNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), func() time.Time { return fixedNow })
}

func TestGenerateTransactions_Shape(t *testing.T) {
	for _, n := range []int{1, 2, 50, 300} {
		got := newTestGenerator(int64(n)).GenerateTransactions(n)
		require.Len(t, got, n)

		for i, txn := range got {
			if i > 0 {
				assert.False(t, txn.Date.After(got[i-1].Date), "not sorted newest first at %d", i)
			}
			assert.True(t, txn.Status.Valid())
			assert.True(t, txn.Type.Valid())
			assert.Contains(t, Merchants, txn.Merchant)
			assert.Contains(t, Locations, txn.Location)
			assert.Regexp(t, `^txn_[0-9a-f]{8}$`, txn.ID)
			assert.Regexp(t, `^\d{4}$`, txn.CardLast4)

			assert.True(t, txn.Amount.GreaterThanOrEqual(decimal.NewFromInt(10)))
			assert.True(t, txn.Amount.LessThanOrEqual(decimal.NewFromInt(1000)))
			assert.True(t, txn.Amount.Equal(txn.Amount.Round(2)))

			age := fixedNow.Sub(txn.Date)
			assert.GreaterOrEqual(t, age, time.Duration(0))
			assert.Less(t, age, 14*24*time.Hour)

			if txn.Flagged {
				assert.GreaterOrEqual(t, txn.RiskScore, 70)
				assert.NotEmpty(t, txn.AnomalyDetails)
			} else {
				assert.LessOrEqual(t, txn.RiskScore, risk.UnflaggedScoreMax)
				assert.Nil(t, txn.AnomalyDetails)
			}
		}
	}
}

func TestGenerateTransactions_NonPositiveCount(t *testing.T) {
	g := newTestGenerator(1)
	assert.Empty(t, g.GenerateTransactions(0))
	assert.Empty(t, g.GenerateTransactions(-3))
}

func TestGenerateTransactions_Deterministic(t *testing.T) {
	a := newTestGenerator(42).GenerateTransactions(20)
	b := newTestGenerator(42).GenerateTransactions(20)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.True(t, a[i].Amount.Equal(b[i].Amount))
		assert.Equal(t, a[i].RiskScore, b[i].RiskScore)
		assert.Equal(t, a[i].Date, b[i].Date)
	}
}

func TestGenerateTransactions_StatusMix(t *testing.T) {
	got := newTestGenerator(5).GenerateTransactions(2000)

	counts := map[models.TransactionStatus]int{}
	for _, txn := range got {
		counts[txn.Status]++
	}
	assert.Greater(t, counts[models.StatusCompleted], 1700)
	assert.Greater(t, counts[models.StatusPending], 0)
	assert.Greater(t, counts[models.StatusFailed], 0)
}

func TestGenerateDailyStats(t *testing.T) {
	for _, days := range []int{0, 1, 30} {
		got := newTestGenerator(3).GenerateDailyStats(days)
		require.Len(t, got, days+1)

		assert.Equal(t, "2026-10-15", got[len(got)-1].Date)
		for i, d := range got {
			if i > 0 {
				assert.Greater(t, d.Date, got[i-1].Date)
			}
			assert.GreaterOrEqual(t, d.Transactions, 50)
			assert.Less(t, d.Transactions, 150)
			assert.GreaterOrEqual(t, d.Fraudulent, 0)
			assert.LessOrEqual(t, d.Fraudulent, d.Transactions)
			assert.Less(t, d.Fraudulent, 15)
		}
	}
}

func TestGenerateDailyStats_SpansCalendarDays(t *testing.T) {
	got := newTestGenerator(8).GenerateDailyStats(30)

	assert.Equal(t, "2026-09-15", got[0].Date)
	for i := 1; i < len(got); i++ {
		prev, err := time.Parse(models.DateLayout, got[i-1].Date)
		require.NoError(t, err)
		cur, err := time.Parse(models.DateLayout, got[i].Date)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cur.Sub(prev))
	}
}

func TestGenerateDailyStats_NegativeDays(t *testing.T) {
	assert.Empty(t, newTestGenerator(1).GenerateDailyStats(-1))
}

func TestNew_RequiresRNG(t *testing.T) {
	assert.Panics(t, func() { New(nil, nil) })
}
