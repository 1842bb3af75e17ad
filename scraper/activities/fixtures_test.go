package activities

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-scraper/browser"
)

const fullItem = `
<div class="o-search-list__item">
  <article data-latitude="40.4153" data-longitude="-3.7074">
    <a class="ga-trackEvent-element _activity-link" title="Free tour por Madrid" href="/es/madrid/free-tour-madrid/"
       data-gtm-new-model-click='{"ecommerce":{"currencyCode":"EUR","click":{"products":[{"price":24.5}]}}}'>
      <img data-src="/f/espana/madrid/free-tour.gif" src="/f/espana/madrid/free-tour.jpg">
    </a>
    <a data-eventcategory="Actividades Listado" href="/es/madrid/free-tour-madrid/">Ver</a>
    <div class="comfort-card__text l-list-card__text"> Recorre el Madrid de los Austrias&nbsp;con guía. </div>
    <div class="comfort-card__features"><span> 2h 30m </span><span> Free tours </span></div>
    <div class="m-availability">
      <div class="m-availability__item">lun.<br> 3 jun <span class="_time">10:00</span><span class="_time">17:00</span></div>
      <div class="m-availability__item _no-dates">mar.<br> 4 jun</div>
      <div class="m-availability__item">mié.<br> 5 jun <span class="_time">10:00</span></div>
    </div>
  </article>
</div>`

// no description, no coordinates
const partialItem = `
<div class="o-search-list__item">
  <div>
    <a class="ga-trackEvent-element _activity-link" title="Visita al Museo del Prado" href="/es/madrid/prado/"
       data-gtm-new-model-click='{"ecommerce":{"currencyCode":"EUR","click":{"products":[{"price":"36,00"}]}}}'>
      <img data-src="/f/prado.jpg" src="/f/prado-small.jpg">
    </a>
    <a data-eventcategory="Actividades Listado" href="/es/madrid/prado/">Ver</a>
    <div class="comfort-card__features"><span>2h</span><span>Visitas guiadas</span></div>
  </div>
</div>`

func namedItem(name string) string {
	return fmt.Sprintf(`<div class="o-search-list__item"><a class="ga-trackEvent-element _activity-link" title="%s"></a></div>`, name)
}

func resultsPage(total int, items ...string) string {
	return fmt.Sprintf(`<html><body>
<div id="activitiesShowing">20</div>
<div class="columns o-pagination__showing"><div class="left">%d actividades</div></div>
<div class="m-availability"></div>
%s
</body></html>`, total, strings.Join(items, "\n"))
}

type fakeGeocoder struct {
	calls [][2]float64
}

func (g *fakeGeocoder) Reverse(_ context.Context, lat, lon float64) (string, error) {
	g.calls = append(g.calls, [2]float64{lat, lon})
	return "Plaza Mayor, Madrid, España", nil
}

// pageDriver serves fixed markup per URL
type pageDriver struct {
	pages   map[string]string
	current string
	visited []string
	missing map[string]bool
}

func (d *pageDriver) Navigate(_ context.Context, url string) error {
	d.current = url
	d.visited = append(d.visited, url)
	return nil
}

func (d *pageDriver) WaitFor(_ context.Context, selector string, _ time.Duration) error {
	if d.missing[d.current+" "+selector] {
		return fmt.Errorf("%w: %s", browser.ErrElementNotFound, selector)
	}
	return nil
}

func (d *pageDriver) ScrollBy(context.Context, int) (float64, error) { return 4000, nil }

func (d *pageDriver) Click(context.Context, string) error { return nil }

func (d *pageDriver) HTML(context.Context) (string, error) {
	html, ok := d.pages[d.current]
	if !ok {
		return "", fmt.Errorf("no page for %s", d.current)
	}
	return html, nil
}
