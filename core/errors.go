package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	ErrUnknownVariant   = errors.New("unknown threshold variant")
	ErrUnknownIndicator = errors.New("unknown indicator")
)

// FailureKind names the validation step that rejected a table.
type FailureKind int

// Validation steps in the order they run.
const (
	MissingColumns FailureKind = iota + 1
	MissingValues
	NonNumeric
	OutOfRange
)

// String returns a short identifier for the kind.
func (k FailureKind) String() string {
	switch k {
	case MissingColumns:
		return "missing_columns"
	case MissingValues:
		return "missing_values"
	case NonNumeric:
		return "non_numeric"
	case OutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// ValidationError is returned by Calculate when the table fails validation.
// Its message matches the one Validate returns.
type ValidationError struct {
	Kind    FailureKind
	Columns []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	cols := strings.Join(e.Columns, ", ")
	switch e.Kind {
	case MissingColumns:
		return "Missing required columns: " + cols
	case MissingValues:
		return "Missing values found in columns: " + cols
	case NonNumeric:
		return "Non-numeric values found in columns: " + cols
	case OutOfRange:
		return fmt.Sprintf("Values outside %g-%g range in columns: %s", DefaultMinValue, DefaultMaxValue, cols)
	default:
		return "validation failed: " + cols
	}
}
