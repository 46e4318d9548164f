package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wallie/wallie/internal/logging"
	"github.com/wallie/wallie/internal/version"
)

// Client fetches the country directory from a remote endpoint
type Client struct {
	// Endpoint is the full URL of the directory (e.g. "https://restcountries.eu/rest/v2/all")
	Endpoint string

	// FlagBaseURL is the base of the flag image service
	FlagBaseURL string

	// HTTPClient is the underlying HTTP client. It has no timeout by default.
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a directory client for endpoint, building flag URLs
// under flagBaseURL
func NewClient(endpoint string, flagBaseURL string) *Client {
	return &Client{
		Endpoint:    endpoint,
		FlagBaseURL: flagBaseURL,
		HTTPClient:  &http.Client{},
		UserAgent:   "wallie/" + version.Version,
	}
}

// SetTimeout sets the HTTP request timeout. Zero disables it.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// FetchAll performs one request and returns every country in upstream order.
// There is no retry. The request is abandoned when ctx is canceled.
func (c *Client) FetchAll(ctx context.Context) ([]Country, error) {
	start := time.Now()

	list, err := c.fetch(ctx)
	if err != nil {
		logging.LogFetchFailed(c.Endpoint, err)
		return nil, err
	}

	logging.LogFetch(c.Endpoint, len(list), time.Since(start))
	return list, nil
}

func (c *Client) fetch(ctx context.Context) ([]Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, &FetchError{Type: ErrTypeNetwork, Message: "failed to create GET request", Endpoint: c.Endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, c.Endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(c.Endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err, c.Endpoint)
	}

	return c.decode(body)
}

// decode parses the upstream JSON array. One unusable record fails the
// whole response.
func (c *Client) decode(body []byte) ([]Country, error) {
	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, NewParseError(c.Endpoint, "failed to parse JSON response", err)
	}

	list := make([]Country, 0, len(records))
	for i, r := range records {
		country, err := FromRecord(r, c.FlagBaseURL)
		if err != nil {
			return nil, NewParseError(c.Endpoint, fmt.Sprintf("invalid record at index %d", i), err)
		}
		list = append(list, country)
	}

	return list, nil
}
