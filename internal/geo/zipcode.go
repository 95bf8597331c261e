// Package geo resolves ZIP codes to places via the free zippopotam.us
// API and carries the small presentation tables (state symbols, colors,
// known-ZIP coordinates) the map and lookup endpoints need.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const lookupBaseURL = "https://api.zippopotam.us/us/"

var ErrZipNotFound = errors.New("zip code not found")

type Place struct {
	ZipCode   string
	City      string
	StateAbbr string
	StateName string
	Latitude  float64
	Longitude float64
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    lookupBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type lookupResponse struct {
	Places []struct {
		PlaceName string `json:"place name"`
		State     string `json:"state"`
		StateAbbr string `json:"state abbreviation"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"places"`
}

// Lookup resolves a 5-digit ZIP to its city, state, and coordinates.
// Format validation is the caller's job; this only handles the call.
func (c *Client) Lookup(ctx context.Context, zip string) (*Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+zip, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrZipNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zip lookup: status %d", res.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Places) == 0 {
		return nil, ErrZipNotFound
	}

	p := body.Places[0]
	lat, _ := strconv.ParseFloat(p.Latitude, 64)
	lng, _ := strconv.ParseFloat(p.Longitude, 64)
	return &Place{
		ZipCode:   zip,
		City:      p.PlaceName,
		StateAbbr: p.StateAbbr,
		StateName: p.State,
		Latitude:  lat,
		Longitude: lng,
	}, nil
}
