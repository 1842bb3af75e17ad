package models

import "time"

// ActivityRecord is one tourist activity card from a search results page
type ActivityRecord struct {
	Name           Opt[string]
	Description    Opt[string]
	URL            Opt[string]
	Image          Opt[string]
	Image2         Opt[string]
	AvailableDays  Opt[[]string]
	AvailableTimes Opt[[][]string] // parallel to AvailableDays
	Duration       Opt[string]
	Latitude       Opt[float64]
	Longitude      Opt[float64]
	Address        Opt[string]
	Price          Opt[float64]
	Currency       Opt[string]
	Category       Opt[string]
	ScrapedAt      time.Time
}

func (r ActivityRecord) Columns() []string {
	return []string{
		"activity_name", "description", "url", "image", "image2",
		"available_days", "available_times", "duration",
		"latitude", "longitude", "address",
		"price", "currency", "category", "scraped_at",
	}
}

func (r ActivityRecord) Values() []any {
	return []any{
		r.Name, r.Description, r.URL, r.Image, r.Image2,
		r.AvailableDays, r.AvailableTimes, r.Duration,
		r.Latitude, r.Longitude, r.Address,
		r.Price, r.Currency, r.Category, r.ScrapedAt,
	}
}
