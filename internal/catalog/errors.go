package catalog

import (
	"errors"
	"fmt"
)

// FetchError reports a non-2xx response from the API.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api returned status %d", e.StatusCode)
}

// ValidationError reports a business-rule rejection from the API, e.g.
// insufficient stock on purchase. Message is the server's reason verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseError reports a response body that did not match the expected envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reason extracts a display string for any catalog error. Server-reported
// messages pass through untouched; transport errors get a short summary.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		if fe.Message != "" {
			return fe.Message
		}
		return fmt.Sprintf("server error (status %d)", fe.StatusCode)
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return "unexpected response from server"
	}
	return "cannot reach the catalog service"
}
