// Package history persists a log of completed analyses so past runs can be
// inspected without rerunning the upload.
package history

import (
	"database/sql"
	"sync"
)

// Run is one completed analysis.
type Run struct {
	ID             string `json:"id"`
	CreatedAt      int64  `json:"created_at"`
	Filename       string `json:"filename"`
	DurationMillis int64  `json:"duration_ms"`
	InputRows      int    `json:"input_rows"`
	ReportRows     int    `json:"report_rows"`
	ClubsProcessed int    `json:"clubs_processed"`
	ExactMatches   int    `json:"exact_matches"`
	PartialMatches int    `json:"partial_matches"`
	MissingPlayers int    `json:"missing_players"`
	NewPlayers     int    `json:"new_players"`
}

// store handles all database operations for run history.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
