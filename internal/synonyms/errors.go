package synonyms

import (
	"fmt"
	"strings"
)

// MalformedError means the synonym document as a whole could not be used.
// Callers fall back to an empty map.
type MalformedError struct {
	Message string
	Cause   error
}

func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed synonym map: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed synonym map: %s", e.Message)
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}

// InvalidEntriesError lists skills whose synonym entries were dropped.
// The rest of the map is still usable.
type InvalidEntriesError struct {
	Keys  []string
	Cause error
}

func (e *InvalidEntriesError) Error() string {
	return fmt.Sprintf("ignored invalid synonym entries for: %s", strings.Join(e.Keys, ", "))
}

func (e *InvalidEntriesError) Unwrap() error {
	return e.Cause
}
