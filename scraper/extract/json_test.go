package extract

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestLookup(t *testing.T) {
	raw := json.RawMessage(`{"ecommerce":{"currencyCode":"EUR","click":{"products":[{"price":"12,50"},{"price":9}]}},"none":null}`)

	cur, err := Decode[string](raw, "ecommerce", "currencyCode")
	require.NoError(t, err)
	assert.Equal(t, "EUR", cur)

	p, err := Number(raw, "ecommerce", "click", "products", 0, "price")
	require.NoError(t, err)
	assert.Equal(t, 12.5, p)

	p, err = Number(raw, "ecommerce", "click", "products", 1, "price")
	require.NoError(t, err)
	assert.Equal(t, 9.0, p)

	_, err = Lookup(raw, "ecommerce", "click", "products", 2)
	assert.ErrorIs(t, err, ErrMissing)

	_, err = Lookup(raw, "none")
	assert.ErrorIs(t, err, ErrMissing)

	_, err = Lookup(raw, "ecommerce", "currencyCode", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ecommerce.currencyCode.x")
}

func TestParseDecimal(t *testing.T) {
	cases := map[string]float64{
		"120":           120,
		"9,4":           9.4,
		"8.7":           8.7,
		"1.234":         1234,
		"1,234":         1234,
		"1.234,56 €":    1234.56,
		"US$1,234.56":   1234.56,
		"Ubicación 9,1": 9.1,
	}
	for in, want := range cases {
		got, err := ParseDecimal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDecimal("gratis")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestSplitMoney(t *testing.T) {
	amount, cur, err := SplitMoney("€ 1.234")
	require.NoError(t, err)
	assert.Equal(t, 1234.0, amount)
	assert.Equal(t, "€", cur)

	amount, cur, err = SplitMoney("245 EUR")
	require.NoError(t, err)
	assert.Equal(t, 245.0, amount)
	assert.Equal(t, "EUR", cur)

	_, _, err = SplitMoney("245")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("1.234 comentarios")
	require.NoError(t, err)
	assert.Equal(t, 1234, n)
}
