package activities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"travel-scraper/models"
	"travel-scraper/scraper/extract"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Geocoder turns coordinates into an address
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

type field = extract.Field[*goquery.Selection, models.ActivityRecord]

// Table is the field table for one search result card. Address lookups go
// through geocoder; a nil geocoder leaves the address missing.
func Table(ctx context.Context, geocoder Geocoder) extract.Table[*goquery.Selection, models.ActivityRecord] {
	return extract.Table[*goquery.Selection, models.ActivityRecord]{
		Name: "activities",
		New: func() models.ActivityRecord {
			return models.ActivityRecord{ScrapedAt: time.Now()}
		},
		Fields: []field{
			extract.Bind("activity_name", true, func(s *goquery.Selection) (string, error) {
				return extract.AttrOf(s, ActivityLinkSelector, "title")
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Name }),

			extract.Bind("description", false, func(s *goquery.Selection) (string, error) {
				return extract.Text(s, DescriptionSelector)
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Description }),

			extract.Bind("url", true, func(s *goquery.Selection) (string, error) {
				href, err := extract.AttrOf(s, ListingLinkSelector, "href")
				return absolute(href), err
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.URL }),

			extract.Bind("image", false, func(s *goquery.Selection) (string, error) {
				src, err := extract.AttrOf(s, "img", "data-src")
				return absolute(src), err
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Image }),

			extract.Bind("image2", false, func(s *goquery.Selection) (string, error) {
				src, err := extract.AttrOf(s, "img", "src")
				return absolute(src), err
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Image2 }),

			extract.Bind("available_days", false, availableDays,
				func(r *models.ActivityRecord) *models.Opt[[]string] { return &r.AvailableDays }),

			extract.Bind("available_times", false, availableTimes,
				func(r *models.ActivityRecord) *models.Opt[[][]string] { return &r.AvailableTimes }),

			extract.Bind("duration", false, func(s *goquery.Selection) (string, error) {
				return feature(s, 0)
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Duration }),

			extract.Bind("latitude", false, func(s *goquery.Selection) (float64, error) {
				return coordinate(s, "data-latitude")
			}, func(r *models.ActivityRecord) *models.Opt[float64] { return &r.Latitude }),

			extract.Bind("longitude", false, func(s *goquery.Selection) (float64, error) {
				return coordinate(s, "data-longitude")
			}, func(r *models.ActivityRecord) *models.Opt[float64] { return &r.Longitude }),

			extract.Bind("address", false, func(s *goquery.Selection) (string, error) {
				if geocoder == nil {
					return "", errors.New("no geocoder configured")
				}
				lat, err := coordinate(s, "data-latitude")
				if err != nil {
					return "", err
				}
				lon, err := coordinate(s, "data-longitude")
				if err != nil {
					return "", err
				}
				return geocoder.Reverse(ctx, lat, lon)
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Address }),

			extract.Bind("price", true, func(s *goquery.Selection) (float64, error) {
				raw, err := gtmPayload(s)
				if err != nil {
					return 0, err
				}
				return extract.Number(raw, "ecommerce", "click", "products", 0, "price")
			}, func(r *models.ActivityRecord) *models.Opt[float64] { return &r.Price }),

			extract.Bind("currency", false, func(s *goquery.Selection) (string, error) {
				raw, err := gtmPayload(s)
				if err != nil {
					return "", err
				}
				return extract.Decode[string](raw, "ecommerce", "currencyCode")
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Currency }),

			extract.Bind("category", false, func(s *goquery.Selection) (string, error) {
				return feature(s, 1)
			}, func(r *models.ActivityRecord) *models.Opt[string] { return &r.Category }),
		},
	}
}

func absolute(href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return SiteHost + href
}

func feature(s *goquery.Selection, i int) (string, error) {
	el, err := extract.Nth(s, FeatureSelector, i)
	if err != nil {
		return "", err
	}
	return extract.CleanText(el.Text()), nil
}

// coordinate reads attr from the card's own <article>
func coordinate(s *goquery.Selection, attr string) (float64, error) {
	raw, err := extract.Attr(s.ChildrenFiltered("article").First(), attr)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func gtmPayload(s *goquery.Selection) (json.RawMessage, error) {
	raw, err := extract.AttrOf(s, ActivityLinkSelector, GTMClickAttr)
	if err != nil {
		return nil, err
	}
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("invalid %s payload", GTMClickAttr)
	}
	return json.RawMessage(raw), nil
}

// availabilityCards returns the day cards that have bookable dates, in document order
func availabilityCards(s *goquery.Selection) *goquery.Selection {
	return s.Find(AvailabilityItem).Not(NoDatesClass)
}

// availableDays reads the day label that follows the <br> of each card
func availableDays(s *goquery.Selection) ([]string, error) {
	days := []string{}
	var err error
	availabilityCards(s).EachWithBreak(func(i int, card *goquery.Selection) bool {
		br := card.Find("br").First()
		if br.Length() == 0 {
			err = fmt.Errorf("%w: <br> in availability card %d", extract.ErrMissing, i)
			return false
		}
		next := br.Get(0).NextSibling
		if next == nil || next.Type != html.TextNode {
			err = fmt.Errorf("%w: day label in availability card %d", extract.ErrMissing, i)
			return false
		}
		days = append(days, strings.TrimSpace(next.Data))
		return true
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

// availableTimes lists the time slots of each card, parallel to availableDays
func availableTimes(s *goquery.Selection) ([][]string, error) {
	times := [][]string{}
	availabilityCards(s).Each(func(_ int, card *goquery.Selection) {
		slots := []string{}
		card.Find(TimeSlotSelector).Each(func(_ int, t *goquery.Selection) {
			slots = append(slots, strings.TrimSpace(t.Text()))
		})
		times = append(times, slots)
	})
	return times, nil
}
