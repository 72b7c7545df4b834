// Package testutil provides testing utilities for vecstat.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic random vectors and
// building in-memory relations and databases from them.
//
// # Random Relations
//
//	rng := testutil.NewRNG(seed)
//	r := rng.Float64Relation(100, 8)             // uniform [0, 1)
//	db := rng.LabeledDatabase(300, 4, 3, 0.5)    // clustered, with class labels
//
// # Literal Relations
//
//	r := testutil.Relation([]float64{1, 2}, []float64{3, 4})
package testutil
