package services

import (
	"errors"
	"fmt"

	"travel-scraper/models"
	"travel-scraper/storage"
	"travel-scraper/utils"
)

// ExportService hands each batch to every configured writer
type ExportService struct {
	writers []storage.Writer
	logger  *utils.Logger
}

func NewExportService(logger *utils.Logger, writers ...storage.Writer) *ExportService {
	return &ExportService{writers: writers, logger: logger}
}

// Export writes records to every writer. A failing writer doesn't stop the
// others; all failures are returned together.
func (s *ExportService) Export(name string, records []models.Record) error {
	var errs []error
	for _, w := range s.writers {
		if err := w.Write(name, records); err != nil {
			s.logger.Error("Failed to export %s: %v", name, err)
			errs = append(errs, fmt.Errorf("%T: %w", w, err))
		}
	}
	return errors.Join(errs...)
}
