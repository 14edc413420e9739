package catalog

import (
	"errors"
	"net/url"
)

var (
	// ErrNotFound is returned when the API answers with a 404, which in
	// practice means the detail URL was malformed.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrEmptyResponse is returned when the API answers with an empty body.
	ErrEmptyResponse = errors.New("catalog: empty response body")
)

// IsTimeout reports whether err was caused by a transport-level timeout.
// Timeouts get a distinct user-facing message from other transport failures.
func IsTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
