package zoom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMaxRetries is returned when a rate-limited request has exhausted all
// retry attempts.
var ErrMaxRetries = errors.New("max retries exceeded")

// APIError is a non-success response from the Zoom API. Code and Message are
// the provider's own error fields when the body could be parsed; Code falls
// back to the HTTP status otherwise.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zoom api error %d: %s", e.Code, e.Message)
}

// Hint returns a remediation hint for errors that commonly mean a missing
// OAuth scope or a feature that is not enabled on the account. Returns an
// empty string when no hint applies.
func (e *APIError) Hint() string {
	msg := strings.ToLower(e.Message)
	if e.Status == 401 || strings.Contains(msg, "scope") || strings.Contains(msg, "access token") {
		return "Add the required scope to your Zoom Marketplace S2S app at https://marketplace.zoom.us/"
	}
	if e.Status == 403 && strings.Contains(msg, "not been enabled") {
		return "This feature is not enabled on your Zoom account. Check your Zoom plan/settings."
	}
	return ""
}
