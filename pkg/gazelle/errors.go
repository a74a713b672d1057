package gazelle

import (
	"errors"
	"fmt"
)

// APIError is a failed API call: an HTTP-level failure or a JSON envelope
// whose status was not "success". Body carries the raw response for
// diagnostics.
type APIError struct {
	Action     string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	action := e.Action
	if action == "" {
		action = "index"
	}
	return fmt.Sprintf("failed to call %s: %d - %s", action, e.StatusCode, e.Body)
}

// ErrMissingDestination is returned by a non-dry torrent download without a
// destination path, before any I/O happens.
var ErrMissingDestination = errors.New("destination path must be set when dry is false")
