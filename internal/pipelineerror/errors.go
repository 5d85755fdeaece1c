// Package pipelineerror defines the fatal error taxonomy of the processing
// pipeline. Row-level coercion failures are deliberately absent: those are
// recovered by dropping the row and surface only as a diagnostic count.
package pipelineerror

import (
	"fmt"
	"strings"
)

// SourceUnavailableError indicates the tabular source could not be read at
// all. Fatal: the pipeline halts before any processing.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source unavailable: %s: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// SchemaError indicates the source is missing one or more required columns.
// Checked once against the schema, never per row. Fatal: halts before any
// row processing.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("source schema is missing required columns: %s",
		strings.Join(e.Missing, ", "))
}

// StateError indicates a stage was invoked before its prerequisite stage
// completed. This is a caller error, not a data problem.
type StateError struct {
	Stage    string
	Got      string
	Expected string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s invoked on a %s record set, expected %s",
		e.Stage, e.Got, e.Expected)
}
