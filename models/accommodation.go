package models

import "time"

// AccommodationRecord is one property card from a hotel search page
type AccommodationRecord struct {
	Name             Opt[string]
	URL              Opt[string]
	Price            Opt[float64]
	Currency         Opt[string]
	DistanceToCenter Opt[string]

	// Amenity flags, detected from badges on the card
	MetroAccess       Opt[bool]
	Certified         Opt[bool]
	DoubleBed         Opt[bool]
	TwinBeds          Opt[bool]
	FreeCancellation  Opt[bool]
	NoPrepayment      Opt[bool]
	BreakfastIncluded Opt[bool]
	AirportTaxi       Opt[bool]

	LocationScore Opt[float64]
	ReviewScore   Opt[float64]
	ReviewCount   Opt[int]
	ScrapedAt     time.Time
}

func (r AccommodationRecord) Columns() []string {
	return []string{
		"name", "url", "price", "currency", "distance_to_center",
		"metro_access", "certified", "double_bed", "twin_beds",
		"free_cancellation", "no_prepayment", "breakfast_included", "airport_taxi",
		"location_score", "review_score", "review_count", "scraped_at",
	}
}

func (r AccommodationRecord) Values() []any {
	return []any{
		r.Name, r.URL, r.Price, r.Currency, r.DistanceToCenter,
		r.MetroAccess, r.Certified, r.DoubleBed, r.TwinBeds,
		r.FreeCancellation, r.NoPrepayment, r.BreakfastIncluded, r.AirportTaxi,
		r.LocationScore, r.ReviewScore, r.ReviewCount, r.ScrapedAt,
	}
}
