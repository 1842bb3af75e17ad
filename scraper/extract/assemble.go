package extract

import (
	"fmt"
	"strings"

	"travel-scraper/utils"

	"github.com/PuerkitoBio/goquery"
)

// Coverage counts, per field, how many records fell back to the missing-value marker
type Coverage struct {
	Table   string
	Records int
	Fields  []string
	Missing map[string]int
}

// NewCoverage starts an empty summary for t
func NewCoverage[In, Out any](t Table[In, Out]) *Coverage {
	return &Coverage{
		Table:   t.Name,
		Fields:  t.FieldNames(),
		Missing: make(map[string]int),
	}
}

// Add folds one record report into the summary
func (c *Coverage) Add(r Report) {
	c.Records++
	for _, name := range r.Missing {
		c.Missing[name]++
	}
}

// Ratio returns the share of records where field was extracted
func (c *Coverage) Ratio(field string) float64 {
	if c.Records == 0 {
		return 0
	}
	return float64(c.Records-c.Missing[field]) / float64(c.Records)
}

// All applies t to every item, keeping input order
func All[In, Out any](items []In, t Table[In, Out], cov *Coverage, logger *utils.Logger) []Out {
	out := make([]Out, 0, len(items))
	for _, it := range items {
		rec, rep := t.Apply(it, logger)
		cov.Add(rep)
		out = append(out, rec)
	}
	return out
}

// Pages parses each page of markup, applies t to every element matching
// container and concatenates the rows in page order, then document order.
func Pages[Out any](pages []string, container string, t Table[*goquery.Selection, Out], logger *utils.Logger) ([]Out, *Coverage, error) {
	cov := NewCoverage(t)
	var rows []Out

	for i, page := range pages {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse page %d: %w", i+1, err)
		}

		var items []*goquery.Selection
		doc.Find(container).Each(func(_ int, s *goquery.Selection) {
			items = append(items, s)
		})
		logger.Debug("[%s] page %d: %d records", t.Name, i+1, len(items))

		rows = append(rows, All(items, t, cov, logger)...)
	}

	return rows, cov, nil
}
