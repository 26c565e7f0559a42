package dashboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "trustshield/internal/errors"
	"trustshield/internal/models"
	"trustshield/internal/services/currency"
	"trustshield/internal/services/stats"
	"trustshield/internal/validation"
)

// Session owns the transactions, chart data and aggregates of one dashboard
// run. Nothing is persisted; a restart starts from fresh demo data.
type Session struct {
	mu           sync.RWMutex
	id           string
	transactions []models.Transaction
	dailyStats   []models.DailyStat
	stats        models.AggregateStats

	classifier Classifier
	converter  *currency.Converter
	metrics    MetricsCollector
	config     SessionConfig
}

// NewSession seeds a session from gen and scores later submissions with classifier.
func NewSession(
	config SessionConfig,
	gen DataGenerator,
	classifier Classifier,
	converter *currency.Converter,
	metrics MetricsCollector,
) *Session {
	if gen == nil {
		panic("generator is required")
	}
	if classifier == nil {
		panic("classifier is required")
	}
	if converter == nil {
		panic("converter is required")
	}

	if config.InitialTransactions < 0 {
		config.InitialTransactions = DefaultInitialTransactions
	}
	if config.ChartDays < 0 {
		config.ChartDays = DefaultChartDays
	}
	if config.AlertLimit <= 0 {
		config.AlertLimit = DefaultAlertLimit
	}
	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	transactions := gen.GenerateTransactions(config.InitialTransactions)
	return &Session{
		id:           uuid.NewString(),
		transactions: transactions,
		dailyStats:   gen.GenerateDailyStats(config.ChartDays),
		stats:        stats.Initialize(transactions),
		classifier:   classifier,
		converter:    converter,
		metrics:      metrics,
		config:       config,
	}
}

// ID identifies this session; it changes on every start.
func (s *Session) ID() string {
	return s.id
}

// Config returns the effective session configuration.
func (s *Session) Config() SessionConfig {
	return s.config
}

// Converter returns the currency converter used for submissions.
func (s *Session) Converter() *currency.Converter {
	return s.converter
}

// Submit scores a user-entered amount, records it as a new transaction and
// updates the aggregates. On error the session is left unchanged.
func (s *Session) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	start := s.config.Clock()
	defer func() {
		s.metrics.RecordOperationDuration("submit", s.config.Clock().Sub(start))
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	amount, assessment, err := s.assess(req)
	if err != nil {
		s.metrics.RecordRejection(rejectionReason(err))
		return nil, err
	}

	txn := models.Transaction{
		ID:             models.NewTransactionID(uuid.New()),
		Amount:         amount,
		Date:           s.config.Clock(),
		Merchant:       ManualEntryMerchant,
		Location:       ManualEntryLocation,
		Status:         models.StatusCompleted,
		Type:           models.TypeCard,
		RiskScore:      assessment.RiskScore,
		Flagged:        assessment.Flagged,
		AnomalyDetails: assessment.AnomalyDetails,
	}

	s.mu.Lock()
	s.transactions = append([]models.Transaction{txn}, s.transactions...)
	s.stats = stats.ApplyNewTransaction(s.stats, txn)
	current := s.stats
	s.mu.Unlock()

	s.metrics.RecordSubmission(assessment.Level, assessment.Flagged)
	return &SubmitResult{Transaction: txn, Assessment: *assessment, Stats: current}, nil
}

// Preview scores an amount exactly like Submit but stores nothing.
func (s *Session) Preview(req SubmitRequest) (*models.RiskAssessment, error) {
	_, assessment, err := s.assess(req)
	return assessment, err
}

// assess validates and converts the requested amount, then classifies it.
// The converted amount is scored and stored unrounded.
func (s *Session) assess(req SubmitRequest) (decimal.Decimal, *models.RiskAssessment, error) {
	if err := validation.ValidateAmount(req.Amount); err != nil {
		return decimal.Zero, nil, err
	}

	amount, err := s.converter.ToInternal(decimal.NewFromFloat(req.Amount), req.Currency)
	if err != nil {
		return decimal.Zero, nil, err
	}

	assessment, err := s.classifier.Classify(amount.InexactFloat64())
	if err != nil {
		return decimal.Zero, nil, err
	}
	return amount, assessment, nil
}

func rejectionReason(err error) string {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return "unknown"
}

// Stats returns the current aggregates.
func (s *Session) Stats() models.AggregateStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Alerts returns up to limit flagged transactions, highest risk first.
// A non-positive limit uses the configured alert limit.
func (s *Session) Alerts(limit int) []models.Transaction {
	if limit <= 0 {
		limit = s.config.AlertLimit
	}

	s.mu.RLock()
	flagged := make([]models.Transaction, 0)
	for _, t := range s.transactions {
		if t.Flagged {
			flagged = append(flagged, t)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].RiskScore > flagged[j].RiskScore
	})
	if len(flagged) > limit {
		flagged = flagged[:limit]
	}
	return flagged
}

// Transactions returns the page of transactions matching query, newest
// first. Offsets past the end yield an empty page with the full total.
func (s *Session) Transactions(query string, offset, limit int) TransactionPage {
	if limit <= 0 {
		limit = s.config.PageSize
	}
	if offset < 0 {
		offset = 0
	}

	s.mu.RLock()
	matched := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if t.Matches(query) {
			matched = append(matched, t)
		}
	}
	s.mu.RUnlock()

	page := TransactionPage{Items: []models.Transaction{}, Total: len(matched)}
	if offset >= len(matched) {
		return page
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	page.Items = matched[offset:end]
	return page
}

// Transaction looks up a single transaction by ID.
func (s *Session) Transaction(id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, ErrTransactionNotFound
}

// DailyStats returns the chart series, oldest day first.
func (s *Session) DailyStats() []models.DailyStat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DailyStat, len(s.dailyStats))
	copy(out, s.dailyStats)
	return out
}
