package mtaapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mta/subway-arrivals/arrivals"
	"mta/subway-arrivals/config"
)

const subwayRouteType = 1

// Client is an HTTP client for the MTA arrivals-and-departures API.
type Client struct {
	httpClient *http.Client
	cfg        config.MTAConfig
}

// NewClient creates a client from provider configuration.
func NewClient(cfg config.MTAConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		cfg:        cfg,
	}
}

// Fetch queries arrivals near the configured location and returns raw
// records ready for the pipeline. The lines argument is unused by this
// provider; the API is location-scoped and the pipeline drops unrequested
// lines itself.
func (c *Client) Fetch(lines []string) ([]arrivals.RawRecord, error) {
	u, err := url.Parse(c.cfg.ArrivalsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid arrivals URL: %w", err)
	}
	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("lat", strconv.FormatFloat(c.cfg.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.cfg.Longitude, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(c.cfg.RadiusMeters))
	q.Set("minutesAfter", strconv.Itoa(c.cfg.LookaheadMinutes))
	q.Set("routeType", strconv.Itoa(subwayRouteType))
	q.Set("maxCount", strconv.Itoa(c.cfg.MaxCount))
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch arrivals: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from arrivals API", resp.StatusCode)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode arrivals response: %w", err)
	}

	return RawRecords(payload.Data.Entry.ArrivalsAndDepartures, c.cfg.Stops), nil
}
