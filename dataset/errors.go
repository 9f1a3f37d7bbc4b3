package dataset

import (
	"errors"
	"fmt"
)

// ============================================================================
// ERRORS — Typed, fatal data errors
// ============================================================================
// Two kinds cover every failure mode: malformed input (DataFormatError) and
// statistics requested over too few records (InsufficientSampleError).
// Both are fatal to the run and name the offending column or subgroup.
// ============================================================================

// Sentinel errors for errors.Is checks.
var (
	ErrDataFormat         = errors.New("data format error")
	ErrInsufficientSample = errors.New("insufficient sample")
)

// DataFormatError reports malformed or missing input columns/values.
// Row is the 1-based data row number; 0 means a header or file-level problem.
type DataFormatError struct {
	Column string
	Row    int
	Reason string
	Err    error
}

func (e *DataFormatError) Error() string {
	switch {
	case e.Column != "" && e.Row > 0:
		return fmt.Sprintf("data format error: column %q, row %d: %s", e.Column, e.Row, e.Reason)
	case e.Column != "":
		return fmt.Sprintf("data format error: column %q: %s", e.Column, e.Reason)
	default:
		return fmt.Sprintf("data format error: %s", e.Reason)
	}
}

func (e *DataFormatError) Is(target error) bool { return target == ErrDataFormat }

func (e *DataFormatError) Unwrap() error { return e.Err }

// NewDataFormatError creates a file-level format error.
func NewDataFormatError(reason string) *DataFormatError {
	return &DataFormatError{Reason: reason}
}

// InsufficientSampleError reports a statistic requested over too few records.
type InsufficientSampleError struct {
	Group string
	Size  int
	Need  int
}

func (e *InsufficientSampleError) Error() string {
	return fmt.Sprintf("insufficient sample: subgroup %q has %d records, need at least %d",
		e.Group, e.Size, e.Need)
}

func (e *InsufficientSampleError) Is(target error) bool { return target == ErrInsufficientSample }
