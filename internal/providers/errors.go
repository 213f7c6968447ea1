package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable indicates a decorator was constructed without a
// downstream provider to delegate to.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError captures a network failure or non-success status from the
// upstream API. It is recoverable: callers keep whatever partial result
// accompanied it (an empty listing or a name-only entity).
type FetchError struct {
	Provider   string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: fetch %s: unexpected status %d", e.Provider, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: fetch %s: %v", e.Provider, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// DecodeError captures a response body that could not be interpreted as the
// expected JSON shape. Individual missing fields are not decode errors;
// they default silently during extraction.
type DecodeError struct {
	Provider string
	URL      string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode %s: %v", e.Provider, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}
