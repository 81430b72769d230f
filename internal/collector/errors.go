package collector

import "fmt"

// FetchError reports that the feed could not be retrieved.
// StatusCode is zero when the request never got a response.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// ParseError reports a malformed or unexpected feed document.
type ParseError struct {
	Msg   string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse feed: %s: %v", e.Msg, e.Cause)
	}
	return "parse feed: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Cause }
