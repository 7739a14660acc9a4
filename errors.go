package clustermaker

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package wraps exactly one of
// them, so callers can branch with errors.Is without knowing the specific
// failure.
var (
	// ErrInput reports malformed or inaccessible source data.
	ErrInput = errors.New("input error")
	// ErrSchema reports a requested feature column that is missing or not numeric.
	ErrSchema = errors.New("schema error")
	// ErrParameter reports an invalid configuration value.
	ErrParameter = errors.New("parameter error")
	// ErrComputation reports numeric degeneracy.
	ErrComputation = errors.New("computation error")
)

var (
	// ErrInvalidInput is returned when a matrix or dataset violates its shape
	// contract: ragged rows, no rows, no columns, non-finite values, duplicate
	// column names.
	ErrInvalidInput = fmt.Errorf("invalid input: %w", ErrInput)

	// ErrMissingColumn is returned when a requested column is absent.
	ErrMissingColumn = fmt.Errorf("missing column: %w", ErrSchema)
	// ErrNonNumericColumn is returned when a requested column holds a value
	// that does not parse as a finite number.
	ErrNonNumericColumn = fmt.Errorf("non-numeric column: %w", ErrSchema)

	// ErrInvalidParameter is returned for out-of-range parameters such as k <= 0.
	ErrInvalidParameter = fmt.Errorf("invalid parameter: %w", ErrParameter)
	// ErrUnknownAlgorithm is returned when an algorithm identifier does not parse.
	ErrUnknownAlgorithm = fmt.Errorf("unknown algorithm: %w", ErrParameter)
	// ErrUnknownLinkage is returned when a linkage identifier does not parse.
	ErrUnknownLinkage = fmt.Errorf("unknown linkage: %w", ErrParameter)

	// ErrDegenerateFeature is returned by Standardize under ZeroVarianceError
	// when a column has zero variance, and whenever a column cannot be scaled
	// within the float64 range.
	ErrDegenerateFeature = fmt.Errorf("degenerate feature: %w", ErrComputation)
	// ErrOverflow is returned when a distance, sum or statistic exceeds the
	// float64 range for finite inputs.
	ErrOverflow = fmt.Errorf("numeric overflow: %w", ErrComputation)
)

// ColumnError reports a schema problem with a named dataset column.
//
// Row is the first offending row for ErrNonNumericColumn and -1 otherwise.
type ColumnError struct {
	Column string
	Row    int
	Value  string
	cause  error
}

func (e *ColumnError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("clustermaker: column %q row %d value %q: %v", e.Column, e.Row, e.Value, e.cause)
	}
	return fmt.Sprintf("clustermaker: column %q: %v", e.Column, e.cause)
}

func (e *ColumnError) Unwrap() error { return e.cause }

// FeatureError reports a numeric problem with a feature matrix column.
type FeatureError struct {
	Index int
	cause error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("clustermaker: feature %d: %v", e.Index, e.cause)
}

func (e *FeatureError) Unwrap() error { return e.cause }
