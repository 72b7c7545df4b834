// Package datasource parses number-vector text files into relation
// databases.
//
// Each non-blank line holds one object. Fields are separated by whitespace
// or a configured separator; lines starting with "#" or "//" are comments.
// Numeric fields form the object's vector, the remaining fields its label
// list. A field index can be designated as the class label instead:
//
//	# x y class
//	1.0 2.0 red
//	1.5 1.8 red
//	8.0 9.0 blue
//
//	db, err := datasource.Parse(f, datasource.WithClassLabelIndex(2))
//
// Inputs ending in ".zst" or ".lz4" are decompressed transparently when
// loaded from a blob store.
package datasource
