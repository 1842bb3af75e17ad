package services

import (
	"travel-scraper/models"
	"travel-scraper/scraper/extract"
	"travel-scraper/utils"
)

// FieldCoverage is how often one field was extracted
type FieldCoverage struct {
	Field   string
	Missing int
	Ratio   float64
}

// Summary describes one scrape run
type Summary struct {
	Source   string
	Records  int
	Priced   int
	MinPrice float64
	AvgPrice float64
	MaxPrice float64
	Fields   []FieldCoverage
}

// InsightService computes run summaries from extracted records
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate summarizes a run from its prices and extraction coverage.
// Records without a price are counted but left out of the price stats.
func (s *InsightService) Generate(source string, prices []models.Opt[float64], cov *extract.Coverage) *Summary {
	sum := &Summary{Source: source, Records: len(prices)}

	if len(prices) == 0 {
		s.logger.Warn("No %s to generate insights from", source)
	}

	var total float64
	for _, p := range prices {
		v, ok := p.Get()
		if !ok {
			continue
		}
		if sum.Priced == 0 || v < sum.MinPrice {
			sum.MinPrice = v
		}
		if v > sum.MaxPrice {
			sum.MaxPrice = v
		}
		total += v
		sum.Priced++
	}
	if sum.Priced > 0 {
		sum.AvgPrice = total / float64(sum.Priced)
	}

	if cov != nil {
		for _, f := range cov.Fields {
			sum.Fields = append(sum.Fields, FieldCoverage{
				Field:   f,
				Missing: cov.Missing[f],
				Ratio:   cov.Ratio(f),
			})
		}
	}
	return sum
}
