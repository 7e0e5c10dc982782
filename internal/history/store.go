package history

import (
	"database/sql"

	"github.com/charmbracelet/log"
)

// New creates a new RunStore.
func New(db *sql.DB) RunStore {
	return &store{
		db: db,
	}
}

// RecordRun appends one completed analysis to the log.
func (s *store) RecordRun(run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO runs (id, created_at, filename, duration_ms, input_rows, report_rows, clubs_processed, exact_matches, partial_matches, missing_players, new_players)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.CreatedAt, run.Filename, run.DurationMillis, run.InputRows, run.ReportRows, run.ClubsProcessed, run.ExactMatches, run.PartialMatches, run.MissingPlayers, run.NewPlayers)
	return err
}

// ListRuns returns all runs, most recent first.
func (s *store) ListRuns() ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, created_at, filename, duration_ms, input_rows, report_rows, clubs_processed, exact_matches, partial_matches, missing_players, new_players
		FROM runs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID, &run.CreatedAt, &run.Filename, &run.DurationMillis,
			&run.InputRows, &run.ReportRows, &run.ClubsProcessed,
			&run.ExactMatches, &run.PartialMatches, &run.MissingPlayers, &run.NewPlayers,
		); err != nil {
			log.Error("Failed to scan run row", "error", err)
			continue
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Clear wipes the run log.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM runs")
	return err
}
