package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tbouchet/squadcheck/internal/history"
	"github.com/tbouchet/squadcheck/internal/sheet"
)

func (s *Server) HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Squadcheck API is running!")
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// AnalyzeHandler accepts the uploaded roster table and runs the full
// reconciliation, returning the report as a JSON array of rows.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		log.Info("Starting roster analysis...")
		s.Metrics.IncAnalysisRuns()
		isDryRun := isDryRunFromContext(r)
		start := time.Now()

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Warn("Analysis request without an uploaded file", "error", err)
			s.Metrics.IncAnalysisFailures()
			respondError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		records, err := sheet.Parse(file)
		if err != nil {
			s.Metrics.IncAnalysisFailures()
			var missingErr *sheet.MissingColumnsError
			if errors.As(err, &missingErr) {
				log.Warn("Uploaded file lacks required columns", "found", missingErr.Found)
				respondError(w, http.StatusBadRequest, missingErr.Error())
				return
			}
			log.Error("Failed to parse uploaded file", "filename", header.Filename, "error", err)
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		rows, summary := s.Assembler.BuildReport(r.Context(), records)
		elapsed := time.Since(start)
		s.Metrics.ObserveAnalysisDuration(elapsed.Seconds())
		log.Info("Roster analysis finished",
			"filename", header.Filename,
			"inputRows", len(records),
			"reportRows", summary.Rows,
			"clubs", summary.Clubs,
			"duration", elapsed,
		)

		run := history.Run{
			ID:             uuid.NewString(),
			CreatedAt:      time.Now().Unix(),
			Filename:       header.Filename,
			DurationMillis: elapsed.Milliseconds(),
			InputRows:      len(records),
			ReportRows:     summary.Rows,
			ClubsProcessed: summary.Clubs,
			ExactMatches:   summary.Exact,
			PartialMatches: summary.Partial,
			MissingPlayers: summary.Missing,
			NewPlayers:     summary.NewPlayers,
		}
		if isDryRun {
			log.Info("[Dry Run] Would have recorded run", "runID", run.ID)
		} else if err := s.History.RecordRun(run); err != nil {
			// The report is still good; history is best-effort.
			log.Error("Failed to record run history", "runID", run.ID, "error", err)
		}
		if s.Notifier != nil {
			if err := s.Notifier.SendRunSummary(run, isDryRun); err != nil {
				log.Error("Failed to send run summary notification", "runID", run.ID, "error", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			log.Error("Failed to encode report to JSON", "error", err)
		}
	}
}

// ListRunsHandler serves past analysis runs, most recent first.
func (s *Server) ListRunsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := s.History.ListRuns()
		if err != nil {
			log.Error("Failed to get runs from store", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to get runs")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			log.Error("Failed to encode runs to JSON", "error", err)
		}
	}
}

// respondError writes the flat {"error": ...} body every failure path shares.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Error("Failed to encode error response", "error", err)
	}
}
