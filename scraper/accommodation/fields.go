package accommodation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"travel-scraper/models"
	"travel-scraper/scraper/extract"

	"github.com/PuerkitoBio/goquery"
)

var reviewCountRegex = regexp.MustCompile(`(?i)(\d[\d.,]*)\s*(comentarios|opiniones|reviews?)`)

type field = extract.Field[*goquery.Selection, models.AccommodationRecord]

type flagTarget = func(*models.AccommodationRecord) *models.Opt[bool]

// Table is the field table for one property card
func Table() extract.Table[*goquery.Selection, models.AccommodationRecord] {
	fields := []field{
		extract.Bind("name", true, func(s *goquery.Selection) (string, error) {
			return extract.Text(s, TitleSelector)
		}, func(r *models.AccommodationRecord) *models.Opt[string] { return &r.Name }),

		extract.Bind("url", true, func(s *goquery.Selection) (string, error) {
			return extract.AttrOf(s, TitleLinkSelector, "href")
		}, func(r *models.AccommodationRecord) *models.Opt[string] { return &r.URL }),

		extract.Bind("price", true, func(s *goquery.Selection) (float64, error) {
			text, err := extract.Text(s, PriceSelector)
			if err != nil {
				return 0, err
			}
			amount, _, err := extract.SplitMoney(text)
			return amount, err
		}, func(r *models.AccommodationRecord) *models.Opt[float64] { return &r.Price }),

		extract.Bind("currency", false, func(s *goquery.Selection) (string, error) {
			text, err := extract.Text(s, PriceSelector)
			if err != nil {
				return "", err
			}
			_, currency, err := extract.SplitMoney(text)
			return currency, err
		}, func(r *models.AccommodationRecord) *models.Opt[string] { return &r.Currency }),

		extract.Bind("distance_to_center", false, func(s *goquery.Selection) (string, error) {
			return extract.Text(s, DistanceSelector)
		}, func(r *models.AccommodationRecord) *models.Opt[string] { return &r.DistanceToCenter }),
	}

	flags := []struct {
		name     string
		keywords []string
		target   flagTarget
	}{
		{"metro_access", metroBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.MetroAccess }},
		{"certified", certifiedBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.Certified }},
		{"double_bed", doubleBedBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.DoubleBed }},
		{"twin_beds", twinBedsBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.TwinBeds }},
		{"free_cancellation", cancellationBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.FreeCancellation }},
		{"no_prepayment", prepaymentBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.NoPrepayment }},
		{"breakfast_included", breakfastBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.BreakfastIncluded }},
		{"airport_taxi", taxiBadge, func(r *models.AccommodationRecord) *models.Opt[bool] { return &r.AirportTaxi }},
	}
	for _, f := range flags {
		fields = append(fields, extract.Bind(f.name, false, badge(f.keywords), f.target))
	}

	fields = append(fields,
		extract.Bind("location_score", false, func(s *goquery.Selection) (float64, error) {
			text, err := extract.Text(s, LocationScoreSelector)
			if err != nil {
				return 0, err
			}
			return extract.ParseDecimal(text)
		}, func(r *models.AccommodationRecord) *models.Opt[float64] { return &r.LocationScore }),

		extract.Bind("review_score", false, func(s *goquery.Selection) (float64, error) {
			text, err := extract.Text(s, ReviewScoreSelector)
			if err != nil {
				return 0, err
			}
			return extract.ParseDecimal(text)
		}, func(r *models.AccommodationRecord) *models.Opt[float64] { return &r.ReviewScore }),

		extract.Bind("review_count", false, reviewCount,
			func(r *models.AccommodationRecord) *models.Opt[int] { return &r.ReviewCount }),
	)

	return extract.Table[*goquery.Selection, models.AccommodationRecord]{
		Name:   "accommodation",
		Fields: fields,
		New: func() models.AccommodationRecord {
			return models.AccommodationRecord{ScrapedAt: time.Now()}
		},
	}
}

// badge reports whether the card text mentions any of keywords
func badge(keywords []string) func(*goquery.Selection) (bool, error) {
	return func(s *goquery.Selection) (bool, error) {
		text := strings.ToLower(extract.CleanText(s.Text()))
		if text == "" {
			return false, fmt.Errorf("%w: card text", extract.ErrMissing)
		}
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true, nil
			}
		}
		return false, nil
	}
}

func reviewCount(s *goquery.Selection) (int, error) {
	text, err := extract.Text(s, ReviewScoreSelector)
	if err != nil {
		return 0, err
	}
	m := reviewCountRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: review count in %q", extract.ErrMissing, text)
	}
	return extract.ParseInt(m[1])
}
