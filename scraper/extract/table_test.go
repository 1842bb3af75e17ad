package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"travel-scraper/models"
	"travel-scraper/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	A models.Opt[string]
	B models.Opt[int]
	C models.Opt[string]
}

func sampleTable() Table[json.RawMessage, sample] {
	return Table[json.RawMessage, sample]{
		Name: "sample",
		Fields: []Field[json.RawMessage, sample]{
			Bind("a", true, func(raw json.RawMessage) (string, error) { return Decode[string](raw, "a") },
				func(s *sample) *models.Opt[string] { return &s.A }),
			Bind("b", false, func(raw json.RawMessage) (int, error) { return Decode[int](raw, "b") },
				func(s *sample) *models.Opt[int] { return &s.B }),
			Bind("c", false, func(raw json.RawMessage) (string, error) {
				var parts []string
				_ = json.Unmarshal(raw, &parts)
				return parts[3], nil // panics on objects
			}, func(s *sample) *models.Opt[string] { return &s.C }),
		},
	}
}

func TestApplyIsolatesFieldFailures(t *testing.T) {
	rec, rep := sampleTable().Apply(json.RawMessage(`{"a":"x"}`), utils.Discard())

	assert.Equal(t, models.Some("x"), rec.A)
	assert.False(t, rec.B.Valid)
	assert.False(t, rec.C.Valid)
	assert.ElementsMatch(t, []string{"b", "c"}, rep.Missing)
	assert.True(t, errors.Is(rep.Errors["b"], ErrMissing))
	assert.Contains(t, rep.Errors["c"].Error(), "panicked")
}

func TestApplyAllFieldsPresent(t *testing.T) {
	tbl := sampleTable()
	tbl.Fields = tbl.Fields[:2]

	rec, rep := tbl.Apply(json.RawMessage(`{"a":"x","b":7}`), utils.Discard())
	assert.True(t, rep.OK())
	assert.Equal(t, 7, rec.B.V)
}

func TestApplyUsesInitializer(t *testing.T) {
	tbl := sampleTable()
	tbl.Fields = nil
	tbl.New = func() sample { return sample{C: models.Some("seed")} }

	rec, _ := tbl.Apply(json.RawMessage(`{}`), utils.Discard())
	assert.Equal(t, "seed", rec.C.V)
}

func TestAllAggregatesCoverage(t *testing.T) {
	tbl := sampleTable()
	cov := NewCoverage(tbl)
	items := []json.RawMessage{
		json.RawMessage(`{"a":"x","b":1}`),
		json.RawMessage(`{"b":2}`),
	}

	rows := All(items, tbl, cov, utils.Discard())
	require.Len(t, rows, 2)
	assert.Equal(t, 2, cov.Records)
	assert.Equal(t, 1, cov.Missing["a"])
	assert.Equal(t, 0, cov.Missing["b"])
	assert.Equal(t, 2, cov.Missing["c"])
	assert.Equal(t, 0.5, cov.Ratio("a"))
	assert.Equal(t, []string{"a", "b", "c"}, cov.Fields)
}
