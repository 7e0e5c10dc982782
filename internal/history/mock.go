package history

import "sync"

// Mock is a mock implementation of the RunStore interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	RecordRunFunc func(run Run) error
	ListRunsFunc  func() ([]Run, error)

	// Call records
	RecordRunCalls []Run
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordRunCalls = nil
}

func (m *Mock) RecordRun(run Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordRunCalls = append(m.RecordRunCalls, run)
	if m.RecordRunFunc != nil {
		return m.RecordRunFunc(run)
	}
	return nil
}

func (m *Mock) ListRuns() ([]Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListRunsFunc != nil {
		return m.ListRunsFunc()
	}
	return append([]Run(nil), m.RecordRunCalls...), nil
}

func (m *Mock) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordRunCalls = nil
	return nil
}
