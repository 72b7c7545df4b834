package relation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an operation is given arguments it
	// cannot compute a result for, such as an empty identifier set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation is returned when a relation lacks a capability an
	// operation strictly requires.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrNoSupportedDataType is returned when a database holds no relation of a
	// requested kind.
	ErrNoSupportedDataType = errors.New("no supported data type")

	// ErrNotFound is returned when an identifier is not part of a relation.
	ErrNotFound = errors.New("object not found")

	// ErrDuplicateID is returned when an identifier is added twice.
	ErrDuplicateID = errors.New("duplicate id")
)

// ErrEmptyScope indicates a statistic was requested over zero elements.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrEmptyScope struct {
	Op string
}

func (e *ErrEmptyScope) Error() string {
	return fmt.Sprintf("cannot compute a %s, because of empty list of ids", e.Op)
}

func (e *ErrEmptyScope) Unwrap() error { return ErrInvalidArgument }

// ErrNotVectorField indicates a relation is not a fixed-dimensionality vector
// field.
//
// It matches ErrUnsupportedOperation via errors.Is.
type ErrNotVectorField struct {
	Type TypeInformation
}

func (e *ErrNotVectorField) Error() string {
	return fmt.Sprintf("expected a vector field, got type information: %v", e.Type)
}

func (e *ErrNotVectorField) Unwrap() error { return ErrUnsupportedOperation }

// ErrDimensionMismatch indicates a vector of the wrong dimensionality.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }
