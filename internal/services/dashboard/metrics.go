package dashboard

import (
	"sync"
	"time"

	"trustshield/internal/models"
)

// MetricsCollector receives session events.
type MetricsCollector interface {
	RecordSubmission(level models.RiskLevel, flagged bool)
	RecordRejection(reason string)
	RecordOperationDuration(operation string, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordSubmission(models.RiskLevel, bool)       {}
func (n *NoopMetricsCollector) RecordRejection(string)                        {}
func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}

// MetricsSnapshot is a point-in-time copy of CounterMetrics.
type MetricsSnapshot struct {
	Submissions     int64                      `json:"submissions"`
	Flagged         int64                      `json:"flagged"`
	ByLevel         map[models.RiskLevel]int64 `json:"by_level"`
	Rejections      map[string]int64           `json:"rejections"`
	LastDurationsMs map[string]float64         `json:"last_durations_ms"`
}

// CounterMetrics keeps in-process counters for the health endpoint.
type CounterMetrics struct {
	mu        sync.Mutex
	submitted int64
	flagged   int64
	byLevel   map[models.RiskLevel]int64
	rejected  map[string]int64
	durations map[string]time.Duration
}

func NewCounterMetrics() *CounterMetrics {
	return &CounterMetrics{
		byLevel:   make(map[models.RiskLevel]int64),
		rejected:  make(map[string]int64),
		durations: make(map[string]time.Duration),
	}
}

func (m *CounterMetrics) RecordSubmission(level models.RiskLevel, flagged bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted++
	if flagged {
		m.flagged++
	}
	m.byLevel[level]++
}

func (m *CounterMetrics) RecordRejection(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

func (m *CounterMetrics) RecordOperationDuration(operation string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[operation] = duration
}

func (m *CounterMetrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := MetricsSnapshot{
		Submissions:     m.submitted,
		Flagged:         m.flagged,
		ByLevel:         make(map[models.RiskLevel]int64, len(m.byLevel)),
		Rejections:      make(map[string]int64, len(m.rejected)),
		LastDurationsMs: make(map[string]float64, len(m.durations)),
	}
	for k, v := range m.byLevel {
		snap.ByLevel[k] = v
	}
	for k, v := range m.rejected {
		snap.Rejections[k] = v
	}
	for k, v := range m.durations {
		snap.LastDurationsMs[k] = float64(v) / float64(time.Millisecond)
	}
	return snap
}
