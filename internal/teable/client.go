// Package teable provides a minimal client for the Teable records API.
package teable

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mounta11n/teable-mcp-server/internal/remote"
)

// Client is a minimal HTTP client for listing records from Teable tables.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a new client for the Teable API rooted at baseURL (for the
// hosted service this is "https://app.teable.io/api"). If httpClient is
// nil, a default with a 30s timeout is used. An empty token is allowed;
// requests are then sent unauthenticated and Teable will reject them for
// non-public tables.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// ListRecordsOptions holds the optional query parameters for a record
// listing. Zero values are omitted from the request.
type ListRecordsOptions struct {
	// Filter is a Teable filter expression, passed through verbatim.
	Filter string
	// Sort is a Teable sort specification, passed through verbatim.
	Sort string
	// Limit caps the number of returned records when greater than zero.
	Limit int
}

// ListRecords fetches records from the given table and returns the raw
// JSON response body. A non-2xx response is returned as a
// *remote.APIError; network-level failures are returned as-is.
func (c *Client) ListRecords(ctx context.Context, tableID string, opts ListRecordsOptions) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/table/%s/record", c.baseURL, url.PathEscape(tableID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	q := req.URL.Query()
	if opts.Filter != "" {
		q.Set("filter", opts.Filter)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return remote.Do(c.httpClient, req)
}
