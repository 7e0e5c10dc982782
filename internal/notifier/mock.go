package notifier

import (
	"sync"

	"github.com/tbouchet/squadcheck/internal/history"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spy for method calls
	SendRunSummaryFunc func(run history.Run, dryRun bool) error

	// Call records
	SendRunSummaryCalls []history.Run
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRunSummaryCalls = nil
}

func (m *Mock) SendRunSummary(run history.Run, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRunSummaryCalls = append(m.SendRunSummaryCalls, run)
	if m.SendRunSummaryFunc != nil {
		return m.SendRunSummaryFunc(run, dryRun)
	}
	return nil
}
