package accommodation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-scraper/browser"
)

const fullCard = `
<div data-testid="property-card">
  <a data-testid="title-link" href="https://www.booking.com/hotel/es/central-madrid.es.html">
    <div data-testid="title">Hotel Central Madrid</div>
  </a>
  <span data-testid="distance">A 1,2 km del centro</span>
  <a data-testid="secondary-review-score-link">Ubicación 9,4</a>
  <div data-testid="review-score">Puntuación 8,7 Fabuloso 1.234 comentarios</div>
  <ul>
    <li>1 cama doble grande</li>
    <li>Cancelación gratis</li>
    <li>Desayuno incluido</li>
  </ul>
  <span data-testid="price-and-discounted-price">€&nbsp;1.245</span>
</div>`

// no link, no price, no scores
const partialCard = `
<div data-testid="property-card">
  <div data-testid="title">Hostal Sol</div>
  <span>Acceso al metro · Sin pago por adelantado</span>
</div>`

func titledCard(name string) string {
	return fmt.Sprintf(`<div data-testid="property-card"><div data-testid="title">%s</div></div>`, name)
}

func resultsPage(cards ...string) string {
	return "<html><body>" + strings.Join(cards, "\n") + "</body></html>"
}

// scrollDriver grows the page by one card per click until the offsets settle
type scrollDriver struct {
	offsets  []float64
	cards    []string
	scrolls  int
	clicks   int
	visited  []string
	noMarker bool
}

func (d *scrollDriver) Navigate(_ context.Context, url string) error {
	d.visited = append(d.visited, url)
	return nil
}

func (d *scrollDriver) WaitFor(_ context.Context, selector string, _ time.Duration) error {
	if d.noMarker {
		return fmt.Errorf("%w: %s", browser.ErrElementNotFound, selector)
	}
	return nil
}

func (d *scrollDriver) ScrollBy(context.Context, int) (float64, error) {
	i := d.scrolls
	if i >= len(d.offsets) {
		i = len(d.offsets) - 1
	}
	d.scrolls++
	return d.offsets[i], nil
}

func (d *scrollDriver) Click(context.Context, string) error {
	d.clicks++
	return nil
}

func (d *scrollDriver) HTML(context.Context) (string, error) {
	n := d.clicks + 1
	if n > len(d.cards) {
		n = len(d.cards)
	}
	return resultsPage(d.cards[:n]...), nil
}
