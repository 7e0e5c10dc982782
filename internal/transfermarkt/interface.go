package transfermarkt

import "context"

// Client defines the interface for resolving a club id to its current roster.
// This allows for mock implementations to be used in tests, keeping the
// reconciliation engine independent of filesystem and network.
type Client interface {
	// FetchRoster returns the current player names for a club. Failures are
	// non-fatal by contract: after the retry budget is exhausted the result
	// is an empty slice, which callers treat as "no data for this club".
	FetchRoster(ctx context.Context, clubID int) []string
}
