// Package geo reverse-geocodes coordinates through a Nominatim-compatible service.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client resolves coordinates to a free-text address
type Client struct {
	http *resty.Client
}

// NewClient creates a client against baseURL, e.g. https://nominatim.openstreetmap.org
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept-language", "es")
	client.SetTimeout(timeout)
	return &Client{http: client}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Reverse returns the address at lat/lon
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lon, 'f', -1, 64),
		}).
		Get("/reverse")
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("geocoder responded with status %d", resp.StatusCode())
	}

	var out reverseResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("geocoder: %s", out.Error)
	}
	if out.DisplayName == "" {
		return "", fmt.Errorf("geocoder returned no address for %v,%v", lat, lon)
	}
	return out.DisplayName, nil
}
