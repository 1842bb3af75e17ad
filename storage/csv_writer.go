package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"travel-scraper/models"
	"travel-scraper/utils"
)

// CSVWriter writes each batch to <dir>/<name>.csv
type CSVWriter struct {
	dir    string
	logger *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(dir string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{dir: dir, logger: logger}
}

// Path returns the file a batch called name is written to
func (w *CSVWriter) Path(name string) string {
	return filepath.Join(w.dir, name+".csv")
}

// Write writes records with a header taken from the first record.
// Missing values are empty cells.
func (w *CSVWriter) Write(name string, records []models.Record) error {
	if len(records) == 0 {
		w.logger.Warn("No %s to write", name)
		return nil
	}

	// Ensure output directory exists
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := w.Path(name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(records[0].Columns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	written := 0
	for i, r := range records {
		values := r.Values()
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = cell(v)
		}
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write CSV row %d: %v", i, err)
			continue
		}
		written++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	w.logger.Info("%s written to: %s (%d/%d rows)", name, path, written, len(records))
	return nil
}

func cell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case time.Time:
		return c.Format(time.RFC3339)
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}
