// Package vector defines the numeric vector abstraction consumed by the
// statistics packages.
//
// Coordinates are addressed 1-based through Value, matching the convention
// used throughout vecstat for per-dimension accessors. A Factory builds a new
// vector of a concrete representation from raw coordinates, so statistics can
// return results in the same representation as the relation they summarize.
package vector
