package accommodation

import (
	"context"
	"fmt"
	"time"

	"travel-scraper/browser"
	"travel-scraper/models"
	"travel-scraper/scraper/extract"
	"travel-scraper/utils"
)

// Scraper collects property cards from a single, infinitely scrolled results page
type Scraper struct {
	baseURL     string
	waitTimeout time.Duration
	scroll      browser.ScrollOptions
	driver      browser.Driver
	logger      *utils.Logger
}

func NewScraper(baseURL string, waitTimeout, scrollDelay time.Duration, maxScrolls int, driver browser.Driver, logger *utils.Logger) *Scraper {
	return &Scraper{
		baseURL:     baseURL,
		waitTimeout: waitTimeout,
		scroll: browser.ScrollOptions{
			LoadMore: LoadMoreSelector,
			Delay:    scrollDelay,
			MaxSteps: maxScrolls,
		},
		driver: driver,
		logger: logger,
	}
}

// Scrape opens the search, keeps scrolling and pressing "load more" until
// the page stops growing, then extracts every card on it.
func (s *Scraper) Scrape(ctx context.Context, f Filters) ([]models.AccommodationRecord, *extract.Coverage, error) {
	searchURL := BuildSearchURL(s.baseURL, f)
	s.logger.Info("Starting accommodation scraper: %s", searchURL)

	err := browser.Load(ctx, s.driver, browser.Page{
		URL:     searchURL,
		Markers: []string{CardSelector},
		Timeout: s.waitTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("results page failed: %w", err)
	}

	scrolls, err := browser.ScrollUntilStable(ctx, s.driver, s.scroll, s.logger)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("Results settled after %d scrolls", scrolls)

	html, err := s.driver.HTML(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read results page: %w", err)
	}

	rows, cov, err := extract.Pages([]string{html}, CardSelector, Table(), s.logger)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Scraping complete. Total properties: %d", len(rows))
	return rows, cov, nil
}
