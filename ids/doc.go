// Package ids defines object identifiers and identifier sets.
//
// # Identifier Sets
//
//   - ArrayIDs: insertion ordered, growable, may hold duplicates
//   - BitmapIDs: unordered set backed by a 64-bit roaring bitmap, iterated ascending
//
// Both implement IDs, the read-only view consumed by the statistics packages
// to scope a computation to a subset of a relation.
package ids
