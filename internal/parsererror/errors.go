// Package parsererror defines the typed errors the insight engine reports to
// its callers. Recoverable problems (a malformed row, an unparseable date)
// are logged and skipped by the components themselves and never surface here.
package parsererror

import (
	"fmt"
	"strings"
)

// MissingColumnError reports that the ingestor could not locate a required
// column in the header row. The parse call that produced it yields no
// partial result.
type MissingColumnError struct {
	Role    string
	Headers []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no column matching role %q in header [%s]",
		e.Role, strings.Join(e.Headers, ", "))
}

// EmptyCatalogError reports that a classifier was invoked with no categories.
// This is a precondition violation on the caller's side, not a data problem.
type EmptyCatalogError struct{}

func (e *EmptyCatalogError) Error() string {
	return "category catalog is empty"
}

// ParseError represents a failure to parse a single field value.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
