package commands

import (
	"fmt"
	"os"

	"travel-scraper/models"
	"travel-scraper/scraper/extract"
	"travel-scraper/services"
	"travel-scraper/storage"
)

// openExporter always writes CSV and adds PostgreSQL unless --csv-only is set.
// The returned func releases the database connection.
func openExporter() (*services.ExportService, func(), error) {
	writers := []storage.Writer{storage.NewCSVWriter(cfg.OutputDir, logger)}
	if csvOnly {
		return services.NewExportService(logger, writers...), func() {}, nil
	}

	pg, err := storage.NewPostgresWriter(cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to PostgreSQL (run with --csv-only to skip it): %w", err)
	}
	if err := pg.CreateTables(); err != nil {
		pg.Close()
		return nil, nil, err
	}
	writers = append(writers, pg)
	return services.NewExportService(logger, writers...), pg.Close, nil
}

func printSummary(source string, prices []models.Opt[float64], cov *extract.Coverage) {
	summary := services.NewInsightService(logger).Generate(source, prices, cov)
	services.PrintSummary(os.Stdout, summary)
}
