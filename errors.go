package vecstat

import "github.com/hupe1980/vecstat/relation"

var (
	// ErrInvalidArgument is returned for empty scopes and malformed input.
	ErrInvalidArgument = relation.ErrInvalidArgument
	// ErrUnsupportedOperation is returned when a relation lacks the
	// capability a statistic needs, such as a vector field.
	ErrUnsupportedOperation = relation.ErrUnsupportedOperation
	// ErrNoSupportedDataType is returned when a database holds no relation of
	// a requested kind.
	ErrNoSupportedDataType = relation.ErrNoSupportedDataType
	// ErrNotFound is returned for unknown identifiers.
	ErrNotFound = relation.ErrNotFound
)

// ErrEmptyScope indicates a statistic over no elements.
type ErrEmptyScope = relation.ErrEmptyScope

// ErrNotVectorField indicates a relation without vector field type
// information.
type ErrNotVectorField = relation.ErrNotVectorField

// ErrDimensionMismatch indicates a vector of unexpected dimensionality.
type ErrDimensionMismatch = relation.ErrDimensionMismatch
