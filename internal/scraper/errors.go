package scraper

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport reports that no HTTP response could be obtained.
	ErrTransport = errors.New("transport error")
	// ErrParse reports a body that does not decode with the requested parser.
	ErrParse = errors.New("parse error")
	// ErrParserNotFound reports a parser outside the supported set.
	ErrParserNotFound = errors.New("parser not found")
)

// TransportError wraps a connection, TLS or body read failure for a URL.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrTransport) hold for any TransportError.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodeError is returned when a parser could not decode the body.
type DecodeError struct {
	Parser Parser
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("the data could not be decoded using the parser %q: %v", e.Parser, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrParse }
