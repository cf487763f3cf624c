package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no extractor handles
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrHTTPRequestFailed is returned when a posting cannot be downloaded
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when fetched HTML yields no text
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// ExtractionError reports a document that was recognized but could not be read.
type ExtractionError struct {
	Name   string
	Format Format
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Name, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
