package mollie

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSupported marks an operation the addressed resource type does
	// not expose (e.g. getting a refund at the top level).
	ErrNotSupported = errors.New("operation not supported")

	// ErrNoCredentials is returned when a client is constructed without an
	// API key, access token, or OAuth token source.
	ErrNoCredentials = errors.New("no credentials configured")
)

// APIError carries an error response from the Mollie API. The message is
// passed through verbatim; the client never retries.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("mollie api: %s", e.Detail)
	case e.Title != "":
		return fmt.Sprintf("mollie api: %s (status %d)", e.Title, e.Status)
	default:
		return fmt.Sprintf("mollie api: status %d", e.Status)
	}
}
