package notifier

import "github.com/tbouchet/squadcheck/internal/history"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendRunSummary announces a completed roster analysis.
	SendRunSummary(run history.Run, dryRun bool) error
}
