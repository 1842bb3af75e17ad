package flights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-scraper/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient serves body with status on every path and records the last request
func newTestClient(t *testing.T, status int, body string) (*Client, *[]*http.Request) {
	t.Helper()
	var seen []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "secret", "sky-scrapper.p.rapidapi.com", 5*time.Second, utils.Discard())
	require.NoError(t, err)
	return c, &seen
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("http://localhost", "", "host", time.Second, utils.Discard())
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGetSendsRapidAPIHeaders(t *testing.T) {
	c, seen := newTestClient(t, http.StatusOK, `{"status":true,"data":[]}`)

	_, err := c.SearchAirports(context.Background(), "Spain")
	require.NoError(t, err)
	require.Len(t, *seen, 1)

	r := (*seen)[0]
	assert.Equal(t, airportsPath, r.URL.Path)
	assert.Equal(t, "secret", r.Header.Get("X-RapidAPI-Key"))
	assert.Equal(t, "sky-scrapper.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))
	assert.Equal(t, "Spain", r.URL.Query().Get("query"))
}

func TestGetRejectsFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`},
		{"quota", http.StatusTooManyRequests, `{"message":"You have exceeded the rate limit"}`},
		{"status false", http.StatusOK, `{"status":false,"message":"Something went wrong"}`},
		{"status false with list message", http.StatusOK, `{"status":false,"message":[{"date":"invalid"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, tc.status, tc.body)
			_, err := c.SearchAirports(context.Background(), "Spain")
			assert.ErrorIs(t, err, ErrRequestFailed)
		})
	}
}
