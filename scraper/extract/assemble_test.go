package extract

import (
	"testing"

	"travel-scraper/models"
	"travel-scraper/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	Title models.Opt[string]
	Link  models.Opt[string]
}

var cardTable = Table[*goquery.Selection, card]{
	Name: "card",
	Fields: []Field[*goquery.Selection, card]{
		Bind("title", true, func(s *goquery.Selection) (string, error) { return Text(s, "h2") },
			func(c *card) *models.Opt[string] { return &c.Title }),
		Bind("link", false, func(s *goquery.Selection) (string, error) { return AttrOf(s, "a", "href") },
			func(c *card) *models.Opt[string] { return &c.Link }),
	},
}

func TestPagesKeepsPageThenDocumentOrder(t *testing.T) {
	pages := []string{
		`<div class="item"><h2>one</h2><a href="/1">x</a></div><div class="item"><h2>two</h2></div>`,
		`<div class="item"><h2> three </h2><a href="/3">x</a></div>`,
	}

	rows, cov, err := Pages(pages, "div.item", cardTable, utils.Discard())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "one", rows[0].Title.V)
	assert.Equal(t, "two", rows[1].Title.V)
	assert.Equal(t, "three", rows[2].Title.V)

	assert.Equal(t, "/1", rows[0].Link.V)
	assert.False(t, rows[1].Link.Valid)
	assert.Equal(t, 1, cov.Missing["link"])
	assert.Equal(t, 3, cov.Records)
}

func TestPagesWithoutContainers(t *testing.T) {
	rows, cov, err := Pages([]string{`<p>nothing</p>`}, "div.item", cardTable, utils.Discard())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, cov.Records)
}

func TestHTMLHelpers(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(stringsReader(`<div><span>a</span><span>b&nbsp;c </span><img data-src="/x.gif"></div>`))
	require.NoError(t, err)
	root := doc.Find("div")

	second, err := Nth(root, "span", 1)
	require.NoError(t, err)
	assert.Equal(t, "b c", CleanText(second.Text()))

	_, err = Nth(root, "span", 2)
	assert.ErrorIs(t, err, ErrMissing)

	src, err := AttrOf(root, "img", "data-src")
	require.NoError(t, err)
	assert.Equal(t, "/x.gif", src)

	_, err = AttrOf(root, "img", "src")
	assert.ErrorIs(t, err, ErrMissing)
}
