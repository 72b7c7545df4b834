// Package relation defines the read-only, identifier-indexed view over objects
// that every statistic in vecstat consumes.
//
// # Relations
//
// A Relation[O] exposes its size, a fresh identifier pass (IterIDs), lookup by
// identifier and a TypeInformation describing its elements. Relations of
// different element kinds are held together by a Database, which hands them
// out type-erased (Untyped) by Kind.
//
// # Vector Fields
//
// A relation whose TypeInformation is a VectorFieldTypeInformation holds
// vectors of one fixed dimensionality and carries the Factory that builds new
// vectors of the relation's representation:
//
//	ti := relation.NewVectorFieldTypeInformation(2, vector.NewFloat64)
//	rel := relation.NewMemoryRelation[vector.Float64](ti)
//	_ = rel.Add(0, vector.Float64{1, 2})
//
// # Errors
//
// ErrInvalidArgument, ErrUnsupportedOperation and ErrNoSupportedDataType are
// the error kinds of the statistics layer; typed errors (ErrEmptyScope,
// ErrNotVectorField, ErrDimensionMismatch) wrap them and are matched with
// errors.Is.
package relation
