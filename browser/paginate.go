package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-scraper/utils"
)

// Page describes how to load one page of results
type Page struct {
	URL     string
	Markers []string // selectors that must appear before the markup is read
	Timeout time.Duration
	// ScrollBy nudges lazy content into view before waiting. Zero skips it.
	ScrollBy int
}

// Load navigates to p and blocks until its markers are present. A marker
// that never appears is fatal.
func Load(ctx context.Context, d Driver, p Page) error {
	if err := d.Navigate(ctx, p.URL); err != nil {
		return err
	}
	if p.ScrollBy != 0 {
		if _, err := d.ScrollBy(ctx, p.ScrollBy); err != nil {
			return fmt.Errorf("scroll %s: %w", p.URL, err)
		}
	}
	for _, m := range p.Markers {
		if err := d.WaitFor(ctx, m, p.Timeout); err != nil {
			return fmt.Errorf("page %s: %w", p.URL, err)
		}
	}
	return nil
}

// Fetch loads p and returns its markup
func Fetch(ctx context.Context, d Driver, p Page) (string, error) {
	if err := Load(ctx, d, p); err != nil {
		return "", err
	}
	return d.HTML(ctx)
}

// RemainingPages returns how many pages follow the first one
func RemainingPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	pages := (total + pageSize - 1) / pageSize
	return pages - 1
}

// ScrollOptions configure ScrollUntilStable
type ScrollOptions struct {
	LoadMore string // selector of the "load more" control; empty scrolls only
	Delay    time.Duration
	MaxSteps int
}

// ScrollUntilStable scrolls to the bottom until two consecutive scrolls report
// the same offset or the load-more control disappears. It returns the number
// of scroll attempts made.
func ScrollUntilStable(ctx context.Context, d Driver, opts ScrollOptions, logger *utils.Logger) (int, error) {
	last := -1.0
	for attempt := 1; attempt <= opts.MaxSteps; attempt++ {
		offset, err := d.ScrollBy(ctx, ScrollBottom)
		if err != nil {
			return attempt, fmt.Errorf("scroll failed: %w", err)
		}
		if err := sleep(ctx, opts.Delay); err != nil {
			return attempt, err
		}

		if offset == last {
			logger.Debug("Offset settled at %.0f after %d scrolls", offset, attempt)
			return attempt, nil
		}
		last = offset

		if opts.LoadMore == "" {
			continue
		}
		if err := d.Click(ctx, opts.LoadMore); err != nil {
			if errors.Is(err, ErrElementNotFound) {
				logger.Info("No load-more control after %d scrolls, stopping", attempt)
				return attempt, nil
			}
			return attempt, fmt.Errorf("click load-more: %w", err)
		}
	}
	return opts.MaxSteps, fmt.Errorf("%w: %d scrolls", ErrScrollLimit, opts.MaxSteps)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
