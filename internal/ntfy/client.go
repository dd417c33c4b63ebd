// Package ntfy provides a minimal publish client for ntfy push
// notification servers (https://ntfy.sh or self-hosted).
package ntfy

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

// Client publishes messages to an ntfy server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a new client for the ntfy server at baseURL. If httpClient
// is nil, a default with a 30s timeout is used. The token is optional;
// when set it is sent as a bearer credential, which self-hosted servers
// with access control require.
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

// Message is a single notification to publish. Channel and Text are
// required; the rest map to optional ntfy headers and are omitted from
// the request when unset.
type Message struct {
	// Channel is the ntfy topic to publish to.
	Channel string
	// Text is the notification body, sent as the raw request body.
	Text string
	// Title sets the Title header when non-empty.
	Title string
	// Priority sets the Priority header (1 lowest to 5 highest) when
	// greater than zero.
	Priority int
	// Tags are joined with commas into the Tags header when non-empty.
	Tags []string
}

// Publish sends msg with a single POST to {base}/{channel} and returns
// the raw response body. A non-2xx response is returned as a
// *remote.APIError; network-level failures are returned as-is.
func (c *Client) Publish(ctx context.Context, msg Message) ([]byte, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(msg.Channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(msg.Text))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "text/plain")
	if msg.Title != "" {
		req.Header.Set("Title", msg.Title)
	}
	if msg.Priority > 0 {
		req.Header.Set("Priority", strconv.Itoa(msg.Priority))
	}
	if len(msg.Tags) > 0 {
		req.Header.Set("Tags", strings.Join(msg.Tags, ","))
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return remote.Do(c.httpClient, req)
}
