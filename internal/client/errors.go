package client

import (
	"fmt"
	"net/http"
)

// FetchError reports a request that could not reach the server or that the
// server answered with a non-success status.
type FetchError struct {
	Method     string
	URL        string
	StatusCode int    // 0 when no response was received
	Message    string // server-supplied error text, if any
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: server error: %s", e.Method, e.URL, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a response body that does not have the expected shape.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
