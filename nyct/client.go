package nyct

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"mta/subway-arrivals/arrivals"
	"mta/subway-arrivals/config"
)

// Client fetches GTFS-RT protobuf feeds for the NYCT subway. The subway is
// split across several feed endpoints by line group; only feeds carrying a
// requested line are fetched.
type Client struct {
	httpClient *http.Client
	cfg        config.NYCTConfig
}

// NewClient creates a client from provider configuration.
func NewClient(cfg config.NYCTConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		cfg:        cfg,
	}
}

// Fetch retrieves every feed carrying one of the requested lines and
// returns the combined raw records at the configured platforms.
func (c *Client) Fetch(lines []string) ([]arrivals.RawRecord, error) {
	requested := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		requested[l] = struct{}{}
	}

	fetched := map[string]struct{}{}
	var out []arrivals.RawRecord
	for _, feed := range c.cfg.Feeds {
		if _, done := fetched[feed.URL]; done {
			continue
		}
		if !carriesAny(feed, requested) {
			continue
		}
		fetched[feed.URL] = struct{}{}

		data, err := c.fetch(feed.URL)
		if err != nil {
			return nil, fmt.Errorf("feed %s: %w", feed.URL, err)
		}
		recs, err := ParseRawRecords(data, c.cfg.Stops)
		if err != nil {
			return nil, fmt.Errorf("feed %s: %w", feed.URL, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}

func carriesAny(feed config.NYCTFeed, requested map[string]struct{}) bool {
	for _, l := range feed.Lines {
		if _, ok := requested[l]; ok {
			return true
		}
	}
	return false
}

func (c *Client) fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
