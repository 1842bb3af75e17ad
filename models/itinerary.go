package models

import "time"

// LegRecord is one direction of an itinerary
type LegRecord struct {
	DurationMinutes Opt[int]
	StopCount       Opt[int]
	Departure       Opt[string]
	Arrival         Opt[string]
	Carrier         Opt[string]
}

// ItineraryRecord is one priced flight option. Return is nil for one-way trips.
type ItineraryRecord struct {
	Price    Opt[float64]
	Currency Opt[string]

	Outbound LegRecord
	Return   *LegRecord

	ChangeAllowed       Opt[bool]
	PartiallyChangeable Opt[bool]
	CancellationAllowed Opt[bool]
	PartiallyRefundable Opt[bool]
	SelfTransfer        Opt[bool]
	Score               Opt[float64]
	OriginAirport       Opt[string]
	DestinationAirport  Opt[string]
	ScrapedAt           time.Time
}

func legColumns(prefix string) []string {
	return []string{
		prefix + "_duration_minutes",
		prefix + "_stop_count",
		prefix + "_departure",
		prefix + "_arrival",
		prefix + "_carrier",
	}
}

func (l LegRecord) values() []any {
	return []any{l.DurationMinutes, l.StopCount, l.Departure, l.Arrival, l.Carrier}
}

func (r ItineraryRecord) Columns() []string {
	cols := []string{"price", "currency"}
	cols = append(cols, legColumns("departure")...)
	if r.Return != nil {
		cols = append(cols, legColumns("return")...)
	}
	return append(cols,
		"change_allowed", "partially_changeable", "cancellation_allowed",
		"partially_refundable", "self_transfer", "score",
		"origin_airport", "destination_airport", "scraped_at",
	)
}

func (r ItineraryRecord) Values() []any {
	vals := []any{r.Price, r.Currency}
	vals = append(vals, r.Outbound.values()...)
	if r.Return != nil {
		vals = append(vals, r.Return.values()...)
	}
	return append(vals,
		r.ChangeAllowed, r.PartiallyChangeable, r.CancellationAllowed,
		r.PartiallyRefundable, r.SelfTransfer, r.Score,
		r.OriginAirport, r.DestinationAirport, r.ScrapedAt,
	)
}
