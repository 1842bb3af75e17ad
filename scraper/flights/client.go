// Package flights talks to the Sky Scrapper flight-search API on RapidAPI:
// airport lookups per country and itinerary searches between two cities.
package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-scraper/utils"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrRequestFailed is returned for non-2xx responses and envelopes with status false
	ErrRequestFailed = errors.New("flight api request failed")
	// ErrUnresolvedLocation is returned when a city has no known airport identifiers
	ErrUnresolvedLocation = errors.New("unresolved location")
	// ErrNoAPIKey is returned by NewClient when no RapidAPI key is configured
	ErrNoAPIKey = errors.New("RAPIDAPI_KEY is not set")
)

const (
	airportsPath    = "/api/v1/flights/searchAirport"
	itinerariesPath = "/api/v2/flights/searchFlights"
)

// Client is an authenticated API client
type Client struct {
	http   *resty.Client
	logger *utils.Logger
}

func NewClient(baseURL, apiKey, apiHost string, timeout time.Duration, logger *utils.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("X-RapidAPI-Key", apiKey)
	client.SetHeader("X-RapidAPI-Host", apiHost)
	client.SetTimeout(timeout)
	return &Client{http: client, logger: logger}, nil
}

type envelope struct {
	Status  bool            `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// get issues one request and returns the data member of the envelope
func (c *Client) get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	c.logger.Debug("GET %s %v", path, params)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %s responded with status %d", ErrRequestFailed, path, resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	if !env.Status {
		return nil, fmt.Errorf("%w: %s: %s", ErrRequestFailed, path, message(env.Message))
	}
	return env.Data, nil
}

// message flattens the envelope message, which is either a string or a list of objects
func message(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
