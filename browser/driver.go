package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

var (
	// ErrElementNotFound means a selector did not match within its wait
	ErrElementNotFound = errors.New("element not found")
	// ErrScrollLimit means the scroll loop hit its iteration bound before the page settled
	ErrScrollLimit = errors.New("scroll limit reached")
)

// ScrollBottom asks ScrollBy to go to the end of the document
const ScrollBottom = 1 << 30

const clickTimeout = 10 * time.Second

// Driver is the browser surface the scrapers rely on. ctx must come from Open.
type Driver interface {
	Navigate(ctx context.Context, url string) error
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error
	ScrollBy(ctx context.Context, dy int) (offset float64, err error)
	Click(ctx context.Context, selector string) error
	HTML(ctx context.Context) (string, error)
}

// Options configure the Chrome session
type Options struct {
	Headless  bool
	UserAgent string
}

// Open starts one Chrome session. Cancelling the returned func closes the
// tab and the browser.
func Open(parent context.Context, opts Options) (context.Context, context.CancelFunc) {
	ua := opts.UserAgent
	if ua == "" {
		ua = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.UserAgent(ua),
		chromedp.WindowSize(1920, 1080), // maximized
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// ChromeDriver implements Driver on chromedp
type ChromeDriver struct{}

func (ChromeDriver) Navigate(ctx context.Context, url string) error {
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (ChromeDriver) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := chromedp.Run(wctx, chromedp.WaitReady(selector, chromedp.ByQuery))
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %v", ErrElementNotFound, selector, timeout)
	}
	return err
}

func (ChromeDriver) ScrollBy(ctx context.Context, dy int) (float64, error) {
	var offset float64
	script := fmt.Sprintf(`(function() { window.scrollBy(0, %d); return window.pageYOffset; })()`, dy)
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &offset)); err != nil {
		return 0, err
	}
	return offset, nil
}

func (ChromeDriver) Click(ctx context.Context, selector string) error {
	var present bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf(`document.querySelector(%q) !== null`, selector), &present)); err != nil {
		return err
	}
	if !present {
		return fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}

	cctx, cancel := context.WithTimeout(ctx, clickTimeout)
	defer cancel()
	err := chromedp.Run(cctx, chromedp.Click(selector, chromedp.ByQuery))
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s not clickable", ErrElementNotFound, selector)
	}
	return err
}

func (ChromeDriver) HTML(ctx context.Context) (string, error) {
	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("read page markup: %w", err)
	}
	return html, nil
}
