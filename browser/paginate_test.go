package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"travel-scraper/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver replays a fixed offset sequence; the last offset repeats
type fakeDriver struct {
	offsets  []float64
	scrolls  int
	clicks   int
	noButton bool
	missing  map[string]bool
	visited  []string
	html     string
}

func (f *fakeDriver) Navigate(_ context.Context, url string) error {
	f.visited = append(f.visited, url)
	return nil
}

func (f *fakeDriver) WaitFor(_ context.Context, selector string, _ time.Duration) error {
	if f.missing[selector] {
		return fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	return nil
}

func (f *fakeDriver) ScrollBy(_ context.Context, _ int) (float64, error) {
	i := f.scrolls
	if i >= len(f.offsets) {
		i = len(f.offsets) - 1
	}
	f.scrolls++
	return f.offsets[i], nil
}

func (f *fakeDriver) Click(_ context.Context, selector string) error {
	if f.noButton {
		return fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	f.clicks++
	return nil
}

func (f *fakeDriver) HTML(context.Context) (string, error) {
	return f.html, nil
}

func TestRemainingPages(t *testing.T) {
	assert.Equal(t, 2, RemainingPages(47, 20))
	assert.Equal(t, 1, RemainingPages(40, 20))
	assert.Equal(t, 0, RemainingPages(20, 20))
	assert.Equal(t, 0, RemainingPages(5, 20))
	assert.Equal(t, 0, RemainingPages(0, 20))
	assert.Equal(t, 0, RemainingPages(47, 0))
}

func TestScrollUntilStableStopsOnRepeatedOffset(t *testing.T) {
	// settles after 3 scrolls -> 4 attempts
	d := &fakeDriver{offsets: []float64{900, 1800, 2700, 2700}}

	n, err := ScrollUntilStable(context.Background(), d, ScrollOptions{LoadMore: "button.more", MaxSteps: 50}, utils.Discard())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, d.scrolls)
	assert.Equal(t, 3, d.clicks)
}

func TestScrollUntilStableStopsWithoutLoadMore(t *testing.T) {
	d := &fakeDriver{offsets: []float64{900, 1800}, noButton: true}

	n, err := ScrollUntilStable(context.Background(), d, ScrollOptions{LoadMore: "button.more", MaxSteps: 50}, utils.Discard())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScrollUntilStableBounded(t *testing.T) {
	d := &fakeDriver{offsets: []float64{1, 2, 3, 4, 5, 6, 7, 8}}

	n, err := ScrollUntilStable(context.Background(), d, ScrollOptions{MaxSteps: 5}, utils.Discard())
	assert.True(t, errors.Is(err, ErrScrollLimit))
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, d.scrolls)
}

func TestScrollUntilStableHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &fakeDriver{offsets: []float64{1, 2}}

	_, err := ScrollUntilStable(ctx, d, ScrollOptions{Delay: time.Second, MaxSteps: 5}, utils.Discard())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchMissingMarkerIsFatal(t *testing.T) {
	d := &fakeDriver{offsets: []float64{0}, missing: map[string]bool{"#marker": true}, html: "<html></html>"}

	_, err := Fetch(context.Background(), d, Page{URL: "http://x", Markers: []string{"div.ok", "#marker"}})
	assert.ErrorIs(t, err, ErrElementNotFound)

	html, err := Fetch(context.Background(), d, Page{URL: "http://y", Markers: []string{"div.ok"}, ScrollBy: 4000})
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)
	assert.Equal(t, []string{"http://x", "http://y"}, d.visited)
}
