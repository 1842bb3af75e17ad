package accommodation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	QuerySeparator  = "&"
	FilterSeparator = ";"
)

// Filters is a hotel search. Zero values mean "no filter".
type Filters struct {
	Destination string
	CheckIn     string // YYYY-MM-DD
	CheckOut    string
	Adults      int
	Children    int
	Rooms       int

	Currency    string // price filter currency, EUR when empty
	MinPrice    int
	MaxPrice    int
	StarRatings []int
	MealPlan    string
	// MinReviewScore on the 0-10 scale, e.g. 8 for "very good"
	MinReviewScore float64
	MaxDistance    int // metres from the centre
}

var mealPlanCodes = map[string]int{
	"breakfast included": 1,
	"desayuno incluido":  1,
	"all meals":          3,
	"full board":         3,
	"pensión completa":   3,
	"all inclusive":      4,
	"todo incluido":      4,
	"half board":         9,
	"breakfast & dinner": 9,
	"media pensión":      9,
	"kitchen facilities": 999,
	"cocina":             999,
}

// MealPlanCode maps a human label to the site's numeric code
func MealPlanCode(label string) (int, bool) {
	code, ok := mealPlanCodes[strings.ToLower(strings.TrimSpace(label))]
	return code, ok
}

// priceClause keeps the site's three literal shapes
func priceClause(currency string, min, max int) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("price=%s-%d-%d-1", currency, min, max)
	case min > 0:
		return fmt.Sprintf("price=%s-%d-max-1", currency, min)
	case max > 0:
		return fmt.Sprintf("price=%s-min-%d-1", currency, max)
	}
	return ""
}

// RefinementFilters returns the nflt clauses in filter-list order
func RefinementFilters(f Filters) []string {
	var out []string

	currency := f.Currency
	if currency == "" {
		currency = "EUR"
	}
	if c := priceClause(currency, f.MinPrice, f.MaxPrice); c != "" {
		out = append(out, c)
	}
	for _, stars := range f.StarRatings {
		out = append(out, "class="+strconv.Itoa(stars))
	}
	if code, ok := MealPlanCode(f.MealPlan); ok {
		out = append(out, "mealplan="+strconv.Itoa(code))
	}
	if f.MinReviewScore > 0 {
		out = append(out, "review_score="+strconv.Itoa(int(f.MinReviewScore*10)))
	}
	if f.MaxDistance > 0 {
		out = append(out, "distance="+strconv.Itoa(f.MaxDistance))
	}
	return out
}

// BuildSearchURL assembles the search URL. Every present filter appends one
// clause; refinement filters travel together, percent-encoded, in nflt.
func BuildSearchURL(base string, f Filters) string {
	clauses := []string{"ss=" + url.QueryEscape(f.Destination)}

	if f.CheckIn != "" {
		clauses = append(clauses, "checkin="+url.QueryEscape(f.CheckIn))
	}
	if f.CheckOut != "" {
		clauses = append(clauses, "checkout="+url.QueryEscape(f.CheckOut))
	}
	if f.Adults > 0 {
		clauses = append(clauses, "group_adults="+strconv.Itoa(f.Adults))
	}
	if f.Children > 0 {
		clauses = append(clauses, "group_children="+strconv.Itoa(f.Children))
	}
	if f.Rooms > 0 {
		clauses = append(clauses, "no_rooms="+strconv.Itoa(f.Rooms))
	}
	if nflt := RefinementFilters(f); len(nflt) > 0 {
		clauses = append(clauses, "nflt="+url.QueryEscape(strings.Join(nflt, FilterSeparator)))
	}

	return base + "?" + strings.Join(clauses, QuerySeparator)
}
