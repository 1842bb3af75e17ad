package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"travel-scraper/models"
	"travel-scraper/scraper/extract"
	"travel-scraper/utils"
)

// Query is one itinerary search between two resolved cities. An empty
// ReturnDate makes it one-way.
type Query struct {
	Origin      models.AirportCode
	Destination models.AirportCode
	Date        string // YYYY-MM-DD
	ReturnDate  string

	Adults     int
	Children   int
	Infants    int
	CabinClass string // economy, premium_economy, business, first
	SortBy     string // best, price_high, fastest, outbound_take_off_time, ...

	Currency    string
	Market      string
	CountryCode string
}

// RoundTrip reports whether the query asks for a return leg
func (q Query) RoundTrip() bool {
	return q.ReturnDate != ""
}

func (q Query) params() map[string]string {
	p := map[string]string{
		"originSkyId":         q.Origin.SkyID,
		"destinationSkyId":    q.Destination.SkyID,
		"originEntityId":      q.Origin.EntityID,
		"destinationEntityId": q.Destination.EntityID,
		"date":                q.Date,
		"cabinClass":          orDefault(q.CabinClass, "economy"),
		"adults":              strconv.Itoa(max(q.Adults, 1)),
		"sortBy":              orDefault(q.SortBy, "best"),
		"currency":            orDefault(q.Currency, "EUR"),
		"market":              orDefault(q.Market, "es-ES"),
		"countryCode":         orDefault(q.CountryCode, "ES"),
	}
	if q.RoundTrip() {
		p["returnDate"] = q.ReturnDate
	}
	if q.Children > 0 {
		p["childrens"] = strconv.Itoa(q.Children)
	}
	if q.Infants > 0 {
		p["infants"] = strconv.Itoa(q.Infants)
	}
	return p
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (q Query) validate() error {
	for _, c := range []models.AirportCode{q.Origin, q.Destination} {
		if c.SkyID == "" || c.EntityID == "" {
			return fmt.Errorf("%w: %q has no airport identifiers", ErrUnresolvedLocation, c.City)
		}
	}
	if q.Date == "" {
		return errors.New("departure date is required")
	}
	return nil
}

// SearchItineraries runs q. A response without itineraries yields the
// missing-value marker, not an error.
func (c *Client) SearchItineraries(ctx context.Context, q Query) (models.Opt[[]models.ItineraryRecord], *extract.Coverage, error) {
	if err := q.validate(); err != nil {
		return models.None[[]models.ItineraryRecord](), nil, err
	}

	data, err := c.get(ctx, itinerariesPath, q.params())
	if err != nil {
		return models.None[[]models.ItineraryRecord](), nil, err
	}
	return ParseItineraries(data, q.RoundTrip(), c.logger)
}

// ParseItineraries applies the itinerary table to data.itineraries
func ParseItineraries(data json.RawMessage, roundTrip bool, logger *utils.Logger) (models.Opt[[]models.ItineraryRecord], *extract.Coverage, error) {
	table := ItineraryTable(roundTrip)
	cov := extract.NewCoverage(table)

	if len(data) == 0 {
		logger.Warn("Response carried no data")
		return models.None[[]models.ItineraryRecord](), cov, nil
	}
	items, err := extract.Decode[[]json.RawMessage](data, "itineraries")
	if errors.Is(err, extract.ErrMissing) {
		logger.Warn("Response carried no itineraries")
		return models.None[[]models.ItineraryRecord](), cov, nil
	}
	if err != nil {
		return models.None[[]models.ItineraryRecord](), nil, err
	}

	return models.Some(extract.All(items, table, cov, logger)), cov, nil
}

type field = extract.Field[json.RawMessage, models.ItineraryRecord]

// ItineraryTable is the field table for one itinerary. Round trips read the
// return leg from legs[1] with the same routine as the outbound leg.
func ItineraryTable(roundTrip bool) extract.Table[json.RawMessage, models.ItineraryRecord] {
	fields := []field{
		extract.Bind("price", true, func(raw json.RawMessage) (float64, error) {
			amount, _, err := formattedPrice(raw)
			return amount, err
		}, func(r *models.ItineraryRecord) *models.Opt[float64] { return &r.Price }),

		extract.Bind("currency", false, func(raw json.RawMessage) (string, error) {
			_, currency, err := formattedPrice(raw)
			return currency, err
		}, func(r *models.ItineraryRecord) *models.Opt[string] { return &r.Currency }),
	}

	fields = append(fields, legFields("departure", 0, func(r *models.ItineraryRecord) *models.LegRecord { return &r.Outbound })...)
	if roundTrip {
		fields = append(fields, legFields("return", 1, func(r *models.ItineraryRecord) *models.LegRecord { return r.Return })...)
	}

	fields = append(fields,
		boolField("change_allowed", func(r *models.ItineraryRecord) *models.Opt[bool] { return &r.ChangeAllowed },
			"farePolicy", "isChangeAllowed"),
		boolField("partially_changeable", func(r *models.ItineraryRecord) *models.Opt[bool] { return &r.PartiallyChangeable },
			"farePolicy", "isPartiallyChangeable"),
		boolField("cancellation_allowed", func(r *models.ItineraryRecord) *models.Opt[bool] { return &r.CancellationAllowed },
			"farePolicy", "isCancellationAllowed"),
		boolField("partially_refundable", func(r *models.ItineraryRecord) *models.Opt[bool] { return &r.PartiallyRefundable },
			"farePolicy", "isPartiallyRefundable"),
		boolField("self_transfer", func(r *models.ItineraryRecord) *models.Opt[bool] { return &r.SelfTransfer },
			"isSelfTransfer"),

		extract.Bind("score", false, func(raw json.RawMessage) (float64, error) {
			return extract.Number(raw, "score")
		}, func(r *models.ItineraryRecord) *models.Opt[float64] { return &r.Score }),

		extract.Bind("origin_airport", false, func(raw json.RawMessage) (string, error) {
			return extract.Decode[string](raw, "legs", 0, "origin", "name")
		}, func(r *models.ItineraryRecord) *models.Opt[string] { return &r.OriginAirport }),

		extract.Bind("destination_airport", false, func(raw json.RawMessage) (string, error) {
			return extract.Decode[string](raw, "legs", 0, "destination", "name")
		}, func(r *models.ItineraryRecord) *models.Opt[string] { return &r.DestinationAirport }),
	)

	return extract.Table[json.RawMessage, models.ItineraryRecord]{
		Name:   "itineraries",
		Fields: fields,
		New: func() models.ItineraryRecord {
			r := models.ItineraryRecord{ScrapedAt: time.Now()}
			if roundTrip {
				r.Return = &models.LegRecord{}
			}
			return r
		},
	}
}

// legFields reads legs[i] into the leg chosen by leg
func legFields(prefix string, i int, leg func(*models.ItineraryRecord) *models.LegRecord) []field {
	return []field{
		extract.Bind(prefix+"_duration_minutes", false, func(raw json.RawMessage) (int, error) {
			return extract.Decode[int](raw, "legs", i, "durationInMinutes")
		}, func(r *models.ItineraryRecord) *models.Opt[int] { return &leg(r).DurationMinutes }),

		extract.Bind(prefix+"_stop_count", false, func(raw json.RawMessage) (int, error) {
			return extract.Decode[int](raw, "legs", i, "stopCount")
		}, func(r *models.ItineraryRecord) *models.Opt[int] { return &leg(r).StopCount }),

		extract.Bind(prefix+"_departure", false, func(raw json.RawMessage) (string, error) {
			return extract.Decode[string](raw, "legs", i, "departure")
		}, func(r *models.ItineraryRecord) *models.Opt[string] { return &leg(r).Departure }),

		extract.Bind(prefix+"_arrival", false, func(raw json.RawMessage) (string, error) {
			return extract.Decode[string](raw, "legs", i, "arrival")
		}, func(r *models.ItineraryRecord) *models.Opt[string] { return &leg(r).Arrival }),

		extract.Bind(prefix+"_carrier", false, func(raw json.RawMessage) (string, error) {
			return extract.Decode[string](raw, "legs", i, "carriers", "marketing", 0, "name")
		}, func(r *models.ItineraryRecord) *models.Opt[string] { return &leg(r).Carrier }),
	}
}

func boolField(name string, target func(*models.ItineraryRecord) *models.Opt[bool], path ...any) field {
	return extract.Bind(name, false, func(raw json.RawMessage) (bool, error) {
		return extract.Decode[bool](raw, path...)
	}, target)
}

// formattedPrice splits price.formatted, e.g. "€ 245" or "245 EUR"
func formattedPrice(raw json.RawMessage) (float64, string, error) {
	s, err := extract.Decode[string](raw, "price", "formatted")
	if err != nil {
		return 0, "", err
	}
	return extract.SplitMoney(s)
}
