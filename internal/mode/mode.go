// Package mode selects which single tool the server exposes.
package mode

import (
	"fmt"
	"os"
	"strings"
)

// Mode identifies one of the bridge variants. Each running process
// serves exactly one.
type Mode string

const (
	// Teable exposes the query_records tool.
	Teable Mode = "teable"
	// Ntfy exposes the send_notification tool.
	Ntfy Mode = "ntfy"
)

// Parse resolves the server mode from a flag value.
// It first checks the provided value, then falls back to the
// MCP_SERVER_MODE environment variable, then defaults to Teable.
// The comparison is case-insensitive.
func Parse(value string) (Mode, error) {
	if value == "" {
		value = os.Getenv("MCP_SERVER_MODE")
	}
	if value == "" {
		return Teable, nil
	}

	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case Teable:
		return Teable, nil
	case Ntfy:
		return Ntfy, nil
	}

	return "", fmt.Errorf("unknown server mode %q (supported: %s, %s)", value, Teable, Ntfy)
}
