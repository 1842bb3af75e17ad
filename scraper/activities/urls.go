package activities

import (
	"net/url"
	"strconv"
	"strings"
)

// DateRange limits results to activities available between From and To (YYYY-MM-DD)
type DateRange struct {
	From string
	To   string
}

// BuildSearchURL returns the listing URL for city. Page 1 carries no page parameter.
func BuildSearchURL(base, city string, dates DateRange, page int) string {
	u := strings.TrimRight(base, "/") + "/" + url.PathEscape(strings.ToLower(strings.TrimSpace(city))) + "/"

	var params []string
	if page > 1 {
		params = append(params, "page="+strconv.Itoa(page))
	}
	if dates.From != "" {
		params = append(params, "fromDate="+url.QueryEscape(dates.From))
	}
	if dates.To != "" {
		params = append(params, "toDate="+url.QueryEscape(dates.To))
	}

	if len(params) == 0 {
		return u
	}
	return u + "?" + strings.Join(params, "&")
}
