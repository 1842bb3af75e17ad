package activities

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"travel-scraper/browser"
	"travel-scraper/models"
	"travel-scraper/scraper/extract"
	"travel-scraper/utils"

	"github.com/PuerkitoBio/goquery"
)

// Search is one activities query
type Search struct {
	City  string
	Dates DateRange
}

// Scraper collects activity cards for a city across every result page
type Scraper struct {
	baseURL     string
	waitTimeout time.Duration
	driver      browser.Driver
	geocoder    Geocoder
	logger      *utils.Logger
}

// NewScraper creates a Scraper. geocoder may be nil.
func NewScraper(baseURL string, waitTimeout time.Duration, driver browser.Driver, geocoder Geocoder, logger *utils.Logger) *Scraper {
	return &Scraper{
		baseURL:     baseURL,
		waitTimeout: waitTimeout,
		driver:      driver,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// Scrape loads the first page, works out how many pages follow from its
// pagination summary, fetches them in order and extracts every card.
func (s *Scraper) Scrape(ctx context.Context, search Search) ([]models.ActivityRecord, *extract.Coverage, error) {
	s.logger.Info("Starting activities scraper for '%s'...", search.City)

	firstURL := BuildSearchURL(s.baseURL, search.City, search.Dates, 1)
	first, err := browser.Fetch(ctx, s.driver, browser.Page{
		URL:     firstURL,
		Markers: []string{AvailabilityReady, ShowingReady},
		Timeout: s.waitTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("first page failed: %w", err)
	}

	pages := []string{first}

	total, pageSize, err := ParseSummary(first)
	if err != nil {
		s.logger.Warn("Pagination summary unreadable, keeping first page only: %v", err)
	} else {
		remaining := browser.RemainingPages(total, pageSize)
		s.logger.Info("%d activities, %d per page, %d more pages", total, pageSize, remaining)

		for page := 2; page <= remaining+1; page++ {
			pageURL := BuildSearchURL(s.baseURL, search.City, search.Dates, page)
			s.logger.Info("  page %d/%d -> %s", page, remaining+1, pageURL)

			html, err := browser.Fetch(ctx, s.driver, browser.Page{
				URL:      pageURL,
				Markers:  []string{AvailabilityReady},
				Timeout:  s.waitTimeout,
				ScrollBy: PageScroll,
			})
			if err != nil {
				return nil, nil, fmt.Errorf("page %d failed: %w", page, err)
			}
			pages = append(pages, html)
		}
	}

	rows, cov, err := extract.Pages(pages, ItemSelector, Table(ctx, s.geocoder), s.logger)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Scraping complete. Total activities: %d", len(rows))
	return rows, cov, nil
}

// ParseSummary reads the total result count and page size from the first
// page. The page size falls back to DefaultPageSize unless the page shows
// it as a single number.
func ParseSummary(page string) (total, pageSize int, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return 0, 0, err
	}

	summary, err := extract.Text(doc.Selection, PaginationSummary)
	if err != nil {
		return 0, 0, err
	}
	total, err = extract.ParseInt(summary)
	if err != nil {
		return 0, 0, fmt.Errorf("pagination summary %q: %w", summary, err)
	}

	pageSize = DefaultPageSize
	if showing, err := extract.Text(doc.Selection, ShowingReady); err == nil {
		// only a bare count is a page size; "1 - 20 de 47" is a range
		if n, err := strconv.Atoi(showing); err == nil && n > 0 {
			pageSize = n
		}
	}
	return total, pageSize, nil
}
