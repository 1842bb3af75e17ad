package activities

import (
	"context"
	"testing"

	"travel-scraper/scraper/extract"
	"travel-scraper/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableExtractsFullCard(t *testing.T) {
	geo := &fakeGeocoder{}
	rows, cov, err := extract.Pages([]string{resultsPage(1, fullItem)}, ItemSelector, Table(context.Background(), geo), utils.Discard())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	r := rows[0]

	assert.Equal(t, "Free tour por Madrid", r.Name.V)
	assert.Equal(t, "Recorre el Madrid de los Austrias con guía.", r.Description.V)
	assert.Equal(t, "www.civitatis.com/es/madrid/free-tour-madrid/", r.URL.V)
	assert.Equal(t, "www.civitatis.com/f/espana/madrid/free-tour.gif", r.Image.V)
	assert.Equal(t, "www.civitatis.com/f/espana/madrid/free-tour.jpg", r.Image2.V)
	assert.Equal(t, []string{"3 jun", "5 jun"}, r.AvailableDays.V)
	assert.Equal(t, [][]string{{"10:00", "17:00"}, {"10:00"}}, r.AvailableTimes.V)
	assert.Len(t, r.AvailableTimes.V, len(r.AvailableDays.V))
	assert.Equal(t, "2h 30m", r.Duration.V)
	assert.Equal(t, 40.4153, r.Latitude.V)
	assert.Equal(t, -3.7074, r.Longitude.V)
	assert.Equal(t, "Plaza Mayor, Madrid, España", r.Address.V)
	assert.Equal(t, 24.5, r.Price.V)
	assert.Equal(t, "EUR", r.Currency.V)
	assert.Equal(t, "Free tours", r.Category.V)
	assert.False(t, r.ScrapedAt.IsZero())

	assert.Equal(t, [][2]float64{{40.4153, -3.7074}}, geo.calls)
	assert.Empty(t, cov.Missing)
}

func TestTableIsolatesMissingFields(t *testing.T) {
	geo := &fakeGeocoder{}
	rows, cov, err := extract.Pages([]string{resultsPage(1, partialItem)}, ItemSelector, Table(context.Background(), geo), utils.Discard())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	r := rows[0]

	assert.False(t, r.Description.Valid)
	assert.False(t, r.Latitude.Valid)
	assert.False(t, r.Longitude.Valid)
	assert.False(t, r.Address.Valid)
	assert.Empty(t, geo.calls)

	assert.Equal(t, "Visita al Museo del Prado", r.Name.V)
	assert.Equal(t, 36.0, r.Price.V)
	assert.Equal(t, "EUR", r.Currency.V)
	assert.Equal(t, "Visitas guiadas", r.Category.V)
	assert.True(t, r.AvailableDays.Valid)
	assert.Empty(t, r.AvailableDays.V)

	assert.Equal(t, map[string]int{"description": 1, "latitude": 1, "longitude": 1, "address": 1}, cov.Missing)
}

func TestTableWithoutGeocoder(t *testing.T) {
	rows, _, err := extract.Pages([]string{resultsPage(1, fullItem)}, ItemSelector, Table(context.Background(), nil), utils.Discard())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.False(t, rows[0].Address.Valid)
	assert.True(t, rows[0].Latitude.Valid)
}
