package relation

import (
	"iter"

	"github.com/hupe1980/vecstat/ids"
)

// Untyped is the type-erased view of a relation.
type Untyped interface {
	// Size returns the number of elements.
	Size() int
	// IterIDs yields every identifier once. Each call starts a new pass.
	IterIDs() iter.Seq[ids.ID]
	// TypeInfo describes the elements.
	TypeInfo() TypeInformation
	// GetAny returns the element stored under id.
	GetAny(id ids.ID) (any, error)
}

// Relation is a read-only, identifier-indexed view over elements of type O.
//
// Implementations must not be mutated while a computation iterates them.
type Relation[O any] interface {
	Untyped
	// Get returns the element stored under id, or ErrNotFound.
	Get(id ids.ID) (O, error)
}

// Objects yields the elements of r in identifier order. Iteration stops after
// the first lookup error, which is yielded with the zero O.
func Objects[O any](r Relation[O]) iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		for id := range r.IterIDs() {
			o, err := r.Get(id)
			if !yield(o, err) || err != nil {
				return
			}
		}
	}
}

// Collect materializes the elements of r into a slice.
func Collect[O any](r Relation[O]) ([]O, error) {
	out := make([]O, 0, r.Size())
	for o, err := range Objects(r) {
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// IDsOf collects the identifiers of r into an ArrayIDs.
func IDsOf(r Untyped) *ids.ArrayIDs {
	out := ids.NewArrayWithCapacity(r.Size())
	for id := range r.IterIDs() {
		out.Add(id)
	}
	return out
}
