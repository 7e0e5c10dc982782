package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                    sync.Mutex
	analysisRuns          int
	analysisFailures      int
	analysisDurations     []float64
	providerFetches       int
	providerFetchFailures int
	cacheHits             int
	slackNotifSent        int
	slackNotifFailed      int
	startupTime           float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		analysisDurations: make([]float64, 0),
	}
}

func (m *Mock) IncAnalysisRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analysisRuns++
}

func (m *Mock) IncAnalysisFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analysisFailures++
}

func (m *Mock) ObserveAnalysisDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analysisDurations = append(m.analysisDurations, duration)
}

func (m *Mock) IncProviderFetches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providerFetches++
}

func (m *Mock) IncProviderFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providerFetchFailures++
}

func (m *Mock) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// AnalysisRuns returns the number of times IncAnalysisRuns was called.
func (m *Mock) AnalysisRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.analysisRuns
}

// AnalysisFailures returns the number of times IncAnalysisFailures was called.
func (m *Mock) AnalysisFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.analysisFailures
}

// ProviderFetches returns the number of times IncProviderFetches was called.
func (m *Mock) ProviderFetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.providerFetches
}

// CacheHits returns the number of times IncCacheHits was called.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
