package storage

import "travel-scraper/models"

// Writer stores one named batch of records, e.g. a CSV file or a table
type Writer interface {
	Write(name string, records []models.Record) error
}
