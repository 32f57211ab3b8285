package ingestion

import "fmt"

// ReadError represents a failure to read an input document.
type ReadError struct {
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("read error: %s", e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// HTMLParseError represents a failure to parse an HTML document.
type HTMLParseError struct {
	Message string
	Cause   error
}

func (e *HTMLParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("html parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html parse error: %s", e.Message)
}

func (e *HTMLParseError) Unwrap() error {
	return e.Cause
}
