package transfermarkt

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spy for method calls
	FetchRosterFunc func(clubID int) []string

	// Call records
	FetchRosterCalls []int
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchRosterCalls = nil
}

func (m *MockClient) FetchRoster(_ context.Context, clubID int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchRosterCalls = append(m.FetchRosterCalls, clubID)
	if m.FetchRosterFunc != nil {
		return m.FetchRosterFunc(clubID)
	}
	return nil
}
