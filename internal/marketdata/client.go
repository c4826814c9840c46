package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client is a rate-limited Yahoo Finance HTTP client.
type Client struct {
	http *http.Client
	sem  chan struct{}
	base string
}

// NewClient creates a Yahoo Finance client. Yahoo throttles anonymous chart
// requests aggressively, so concurrency is capped at 4 in-flight requests.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
		sem:  make(chan struct{}, 4),
		base: defaultBaseURL,
	}
}

// GetJSON fetches a URL and decodes JSON into dst.
func (c *Client) GetJSON(url string, dst interface{}) error {
	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	// Yahoo rejects requests without a browser-ish User-Agent.
	req.Header.Set("User-Agent", "curl/8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("yahoo %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
