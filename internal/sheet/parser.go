// Package sheet parses the uploaded roster table. Exports are the upload's
// data sheet layout: three non-data preamble lines, then a header row, then
// one row per player.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// preambleLines is the number of title/metadata lines before the header.
	preambleLines = 3

	columnPlayerName = "player_display_name"
	columnTeamSlug   = "team_slug"
)

// PlayerRecord is one usable row of the uploaded table.
type PlayerRecord struct {
	DisplayName string
	ClubSlug    string
}

// MissingColumnsError reports that the header row lacks a required column.
// It carries the columns that were found so the caller can echo them back.
type MissingColumnsError struct {
	Found []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("Missing required columns. Found: %v", e.Found)
}

// Parse reads the uploaded table, skips the preamble, validates the header
// (column names are trimmed before checking) and returns the player rows in
// their original order. Rows missing either required value are discarded.
func Parse(r io.Reader) ([]PlayerRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	for i := 0; i < preambleLines; i++ {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("file ended before the header row: %w", err)
			}
			return nil, fmt.Errorf("failed to read preamble line %d: %w", i+1, err)
		}
	}

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("file ended before the header row: %w", err)
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make([]string, len(header))
	nameIdx, slugIdx := -1, -1
	for i, col := range header {
		col = strings.TrimSpace(col)
		columns[i] = col
		switch col {
		case columnPlayerName:
			nameIdx = i
		case columnTeamSlug:
			slugIdx = i
		}
	}
	log.Debug("Detected columns", "columns", columns)
	if nameIdx < 0 || slugIdx < 0 {
		return nil, &MissingColumnsError{Found: columns}
	}

	var records []PlayerRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if nameIdx >= len(row) || slugIdx >= len(row) {
			continue
		}
		// Values are kept as typed; the normalizer handles stray whitespace
		// later. Rows missing either value are unusable and dropped here.
		name := row[nameIdx]
		slug := strings.TrimSpace(row[slugIdx])
		if strings.TrimSpace(name) == "" || slug == "" {
			continue
		}
		records = append(records, PlayerRecord{DisplayName: name, ClubSlug: slug})
	}
	return records, nil
}
