package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"travel-scraper/models"
	"travel-scraper/utils"

	_ "github.com/lib/pq"
)

// Table names shared by the CSV and PostgreSQL outputs
const (
	ActivitiesTable     = "activities"
	AccommodationsTable = "accommodations"
	ItinerariesTable    = "itineraries"
	AirportCodesTable   = "airport_codes"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id              SERIAL PRIMARY KEY,
		activity_name   TEXT,
		description     TEXT,
		url             TEXT,
		image           TEXT,
		image2          TEXT,
		available_days  JSONB,
		available_times JSONB,
		duration        TEXT,
		latitude        DOUBLE PRECISION,
		longitude       DOUBLE PRECISION,
		address         TEXT,
		price           NUMERIC(10,2),
		currency        VARCHAR(8),
		category        TEXT,
		scraped_at      TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_activities_price ON activities (price);`,

	`CREATE TABLE IF NOT EXISTS accommodations (
		id                 SERIAL PRIMARY KEY,
		name               TEXT,
		url                TEXT,
		price              NUMERIC(10,2),
		currency           VARCHAR(8),
		distance_to_center TEXT,
		metro_access       BOOLEAN,
		certified          BOOLEAN,
		double_bed         BOOLEAN,
		twin_beds          BOOLEAN,
		free_cancellation  BOOLEAN,
		no_prepayment      BOOLEAN,
		breakfast_included BOOLEAN,
		airport_taxi       BOOLEAN,
		location_score     NUMERIC(4,2),
		review_score       NUMERIC(4,2),
		review_count       INTEGER,
		scraped_at         TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_accommodations_price ON accommodations (price);`,

	`CREATE TABLE IF NOT EXISTS itineraries (
		id                         SERIAL PRIMARY KEY,
		price                      NUMERIC(10,2),
		currency                   VARCHAR(8),
		departure_duration_minutes INTEGER,
		departure_stop_count       INTEGER,
		departure_departure        TEXT,
		departure_arrival          TEXT,
		departure_carrier          TEXT,
		return_duration_minutes    INTEGER,
		return_stop_count          INTEGER,
		return_departure           TEXT,
		return_arrival             TEXT,
		return_carrier             TEXT,
		change_allowed             BOOLEAN,
		partially_changeable       BOOLEAN,
		cancellation_allowed       BOOLEAN,
		partially_refundable       BOOLEAN,
		self_transfer              BOOLEAN,
		score                      DOUBLE PRECISION,
		origin_airport             TEXT,
		destination_airport        TEXT,
		scraped_at                 TIMESTAMP NOT NULL DEFAULT NOW()
	);`,

	`CREATE TABLE IF NOT EXISTS airport_codes (
		id               SERIAL PRIMARY KEY,
		country          TEXT NOT NULL,
		city             TEXT,
		sky_id           TEXT,
		entity_id        TEXT,
		flight_entity_id TEXT,
		airport_name     TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_airport_codes_city ON airport_codes (lower(country), lower(city));`,
}

// PostgresWriter stores record batches in PostgreSQL, one table per batch name
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTables creates every output table if it doesn't exist
func (w *PostgresWriter) CreateTables() error {
	for _, ddl := range schema {
		if _, err := w.db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	w.logger.Info("Tables are ready")
	return nil
}

// Write inserts records into table name in a single transaction. Any failed
// row rolls back the whole batch.
func (w *PostgresWriter) Write(name string, records []models.Record) (err error) {
	if len(records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// one-way and round-trip itineraries have different column sets
	stmts := make(map[string]*sql.Stmt)
	defer func() {
		for _, s := range stmts {
			_ = s.Close()
		}
	}()

	for i, r := range records {
		query := insertStatement(name, r.Columns())
		stmt, ok := stmts[query]
		if !ok {
			stmt, err = tx.Prepare(query)
			if err != nil {
				return fmt.Errorf("failed to prepare statement: %w", err)
			}
			stmts[query] = stmt
		}
		if _, err = stmt.Exec(r.Values()...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", name, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Inserted %d rows into PostgreSQL table %s", len(records), name)
	return nil
}

func insertStatement(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}
