package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error is the typed error returned by gateway calls. StatusCode carries
// the HTTP status class where one exists; Code is the machine error code
// from the gateway's error envelope.
type Error struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("gateway error (%d): %s", e.StatusCode, e.Message)
}

// Transient reports whether the failure is worth retrying:
// timeouts, rate limits and 5xx-class responses are transient,
// every other 4xx-class response is permanent.
func (e *Error) Transient() bool {
	switch {
	case e.StatusCode == http.StatusRequestTimeout:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= 500:
		return true
	default:
		return false
	}
}

// IsTransient classifies any error from a gateway call. Network-level
// failures and deadline expiry count as transient; typed gateway errors
// answer for themselves; anything else is treated as permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Transient()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return false
}

// IsNotFound reports whether the error is a 404 from the gateway
func IsNotFound(err error) bool {
	var gwErr *Error
	return errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound
}

// IsAuthError reports whether the error is an authentication failure
func IsAuthError(err error) bool {
	var gwErr *Error
	return errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusUnauthorized
}
