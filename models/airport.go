package models

// AirportCode maps a human-readable city to the identifiers the flight API expects
type AirportCode struct {
	Country        string
	City           string
	SkyID          string // city-level, e.g. "MAD"
	EntityID       string // city-level, e.g. "95565077"
	FlightEntityID string
	Name           string
}

func (a AirportCode) Columns() []string {
	return []string{"country", "city", "sky_id", "entity_id", "flight_entity_id", "airport_name"}
}

func (a AirportCode) Values() []any {
	return []any{a.Country, a.City, a.SkyID, a.EntityID, a.FlightEntityID, a.Name}
}
