// Package remote executes the single outbound HTTP call a tool invocation
// maps to. It splits failures into two kinds: a non-2xx response from the
// remote service becomes an *APIError carrying the status and body, while
// transport-level failures (DNS, connection, timeout) pass through as plain
// errors. Callers inspect the kind with errors.As.
package remote

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is an application-level failure: the remote service answered,
// but with a non-2xx status. Body holds the raw response body, which for
// both Teable and ntfy usually contains the service's own error message.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote returned %s", e.Status)
	}
	return fmt.Sprintf("remote returned %s: %s", e.Status, e.Body)
}

// Do performs req exactly once and returns the response body. There are no
// retries: the call either completes or fails once.
func Do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}
