// Package stats computes summary statistics over vector relations.
//
// Every statistic comes in variants for a whole relation, an identifier subset
// and, for centroids, a dimension mask or a one-shot identifier sequence.
// Results of vector type are built with the factory of the relation's
// VectorFieldTypeInformation, so they share the relation's representation.
//
// # Normalization
//
// CovarianceMatrixOf returns the unnormalized Gram matrix of the deviations
// (the sum of outer products), while CovarianceMatrix and
// CovarianceMatrixAround divide by the number of elements. Callers comparing
// the two must scale themselves. Variances always divide by the number of
// contributing elements (population variance).
//
// # Errors
//
// An empty scope fails with an error matching relation.ErrInvalidArgument. A
// relation without a vector field fails with relation.ErrUnsupportedOperation
// wherever a result vector must be constructed.
//
// Nothing is cached: each call rescans the relation.
package stats
