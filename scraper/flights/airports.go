package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"travel-scraper/models"
	"travel-scraper/scraper/extract"
	"travel-scraper/utils"
)

const airportEntity = "AIRPORT"

// SearchAirports lists the airports the API knows for country
func (c *Client) SearchAirports(ctx context.Context, country string) ([]models.AirportCode, error) {
	data, err := c.get(ctx, airportsPath, map[string]string{
		"query":  country,
		"locale": "es-ES",
	})
	if err != nil {
		return nil, err
	}
	return ParseAirports(country, data, c.logger)
}

type airportRow struct {
	City           models.Opt[string]
	SkyID          models.Opt[string]
	EntityID       models.Opt[string]
	FlightEntityID models.Opt[string]
	Name           models.Opt[string]
}

func stringAt(path ...any) func(json.RawMessage) (string, error) {
	return func(raw json.RawMessage) (string, error) {
		s, err := extract.Decode[string](raw, path...)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("%w: empty %v", extract.ErrMissing, path)
		}
		return s, nil
	}
}

var airportTable = extract.Table[json.RawMessage, airportRow]{
	Name: "airports",
	Fields: []extract.Field[json.RawMessage, airportRow]{
		extract.Bind("city", true, stringAt("navigation", "relevantHotelParams", "localizedName"),
			func(r *airportRow) *models.Opt[string] { return &r.City }),
		extract.Bind("sky_id", true, stringAt("skyId"),
			func(r *airportRow) *models.Opt[string] { return &r.SkyID }),
		extract.Bind("entity_id", true, stringAt("entityId"),
			func(r *airportRow) *models.Opt[string] { return &r.EntityID }),
		extract.Bind("flight_entity_id", false, stringAt("navigation", "relevantFlightParams", "entityId"),
			func(r *airportRow) *models.Opt[string] { return &r.FlightEntityID }),
		extract.Bind("airport_name", false, stringAt("presentation", "title"),
			func(r *airportRow) *models.Opt[string] { return &r.Name }),
	},
}

// identifying fields; an airport without them can never be looked up
var airportKeyFields = map[string]bool{"city": true, "sky_id": true, "entity_id": true}

// ParseAirports maps the location entries of data into AirportCodes. Only
// airports are kept, and entries without a city or identifiers are dropped.
func ParseAirports(country string, data json.RawMessage, logger *utils.Logger) ([]models.AirportCode, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("airport list: %w", err)
	}

	codes := []models.AirportCode{}
	for i, e := range entries {
		kind, err := extract.Decode[string](e, "navigation", "entityType")
		if err != nil || kind != airportEntity {
			continue
		}

		row, rep := airportTable.Apply(e, logger)
		if incomplete(rep) {
			logger.Warn("Skipping airport entry %d for %s: missing %v", i, country, rep.Missing)
			continue
		}
		codes = append(codes, models.AirportCode{
			Country:        country,
			City:           row.City.V,
			SkyID:          row.SkyID.V,
			EntityID:       row.EntityID.V,
			FlightEntityID: row.FlightEntityID.OrElse(""),
			Name:           row.Name.OrElse(""),
		})
	}
	return codes, nil
}

func incomplete(rep extract.Report) bool {
	for _, name := range rep.Missing {
		if airportKeyFields[name] {
			return true
		}
	}
	return false
}

type airportKey struct {
	country string
	city    string
}

func keyOf(country, city string) airportKey {
	return airportKey{
		country: strings.ToLower(strings.TrimSpace(country)),
		city:    strings.ToLower(strings.TrimSpace(city)),
	}
}

// AirportTable indexes airport codes by (country, city). Lookups ignore case.
type AirportTable struct {
	codes     map[airportKey]models.AirportCode
	countries map[string]bool
	order     []airportKey
}

func NewAirportTable() *AirportTable {
	return &AirportTable{
		codes:     make(map[airportKey]models.AirportCode),
		countries: make(map[string]bool),
	}
}

// Add indexes codes for country. The first code seen for a city wins.
func (t *AirportTable) Add(country string, codes []models.AirportCode) {
	t.countries[keyOf(country, "").country] = true
	for _, c := range codes {
		k := keyOf(country, c.City)
		if k.city == "" {
			continue
		}
		if _, ok := t.codes[k]; ok {
			continue
		}
		t.codes[k] = c
		t.order = append(t.order, k)
	}
}

// Has reports whether country was already loaded
func (t *AirportTable) Has(country string) bool {
	return t.countries[keyOf(country, "").country]
}

func (t *AirportTable) Lookup(country, city string) (models.AirportCode, error) {
	k := keyOf(country, city)
	c, ok := t.codes[k]
	if !ok || k.city == "" {
		return models.AirportCode{}, fmt.Errorf("%w: %s, %s", ErrUnresolvedLocation, city, country)
	}
	return c, nil
}

// All returns every code in insertion order
func (t *AirportTable) All() []models.AirportCode {
	out := make([]models.AirportCode, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.codes[k])
	}
	return out
}

// AirportSearcher lists a country's airports
type AirportSearcher interface {
	SearchAirports(ctx context.Context, country string) ([]models.AirportCode, error)
}

// Resolver turns (country, city) into airport codes, querying each country
// at most once per run
type Resolver struct {
	api   AirportSearcher
	table *AirportTable
}

func NewResolver(api AirportSearcher) *Resolver {
	return &Resolver{api: api, table: NewAirportTable()}
}

func (r *Resolver) Resolve(ctx context.Context, country, city string) (models.AirportCode, error) {
	country = strings.TrimSpace(country)
	if !r.table.Has(country) {
		codes, err := r.api.SearchAirports(ctx, country)
		if err != nil {
			return models.AirportCode{}, fmt.Errorf("airports for %s: %w", country, err)
		}
		r.table.Add(country, codes)
	}
	return r.table.Lookup(country, city)
}

// Table exposes every code resolved so far
func (r *Resolver) Table() *AirportTable {
	return r.table
}
