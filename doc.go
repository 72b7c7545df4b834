// Package vecstat computes statistics and performs introspection over
// identifier-indexed relations of feature vectors and labels.
//
// The core lives in sub-packages: ids (identifier sets), vector (vector
// representations), relation (relations, type information and databases),
// stats (centroid, covariance, variance, min/max), labels (label views and
// label lookup) and introspect (common element types). This package wraps
// them in an Analyzer that logs and measures every call.
//
// # Quick Start
//
//	r, _ := relation.NewVectorRelation(2, vector.NewFloat64,
//	    vector.Float64{1, 2}, vector.Float64{3, 4})
//
//	a := vecstat.NewAnalyzer[vector.Float64](
//	    vecstat.WithLogger(vecstat.NewTextLogger(slog.LevelDebug)),
//	)
//	c, _ := a.Centroid(ctx, r) // (2, 3)
//
// # Loading Data
//
// The datasource package parses whitespace or separator delimited text files
// (optionally zstd or lz4 compressed) from any blobstore.BlobStore: local
// files, memory, Amazon S3 or MinIO. The datasource/pgsource package reads
// pgvector columns from PostgreSQL.
//
// # Covariance Normalization
//
// CovarianceMatrix divides by the number of elements, CovarianceMatrixOf does
// not: it returns the scatter matrix of the subset.
//
// # Errors
//
// Errors are sentinel values or typed errors wrapping them; test them with
// errors.Is and errors.As:
//
//	_, err := a.CentroidOf(ctx, r, ids.NewArray())
//	errors.Is(err, vecstat.ErrInvalidArgument) // true
//
// # Command Line
//
// cmd/vecstat exposes summaries, label matching, class label listing and type
// inference on datasets described by a YAML configuration.
package vecstat
