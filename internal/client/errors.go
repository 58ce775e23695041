package client

import (
	"fmt"
	"strings"
)

// APIError is the single failure shape for backend responses. Body always
// carries the raw response text, even when the backend answers with an HTML
// error page instead of JSON.
type APIError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	if msg == "" {
		return fmt.Sprintf("request to %s failed (HTTP %d)", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("request to %s failed (HTTP %d): %s", e.Endpoint, e.Status, msg)
}

// ValidationError reports a request rejected before any network I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
