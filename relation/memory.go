package relation

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/vector"
)

// MemoryRelation is an in-memory Relation that iterates identifiers in
// insertion order.
type MemoryRelation[O any] struct {
	typeInfo TypeInformation
	order    []ids.ID
	data     map[ids.ID]O
}

// NewMemoryRelation creates an empty relation with the given type information.
func NewMemoryRelation[O any](ti TypeInformation) *MemoryRelation[O] {
	return &MemoryRelation[O]{
		typeInfo: ti,
		data:     make(map[ids.ID]O),
	}
}

// NewVectorRelation creates a vector field relation holding vecs under the
// identifiers 0..len(vecs)-1.
func NewVectorRelation[V vector.Vector](dim int, factory vector.Factory[V], vecs ...V) (*MemoryRelation[V], error) {
	r := NewMemoryRelation[V](NewVectorFieldTypeInformation(dim, factory))
	for i, v := range vecs {
		if err := r.Add(ids.ID(i), v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add stores o under id. Vectors added to a vector field must match its
// dimensionality.
func (r *MemoryRelation[O]) Add(id ids.ID, o O) error {
	if _, ok := r.data[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if vf, ok := r.typeInfo.(VectorField); ok {
		if v, ok := any(o).(vector.Vector); ok && v.Dimensionality() != vf.Dimensionality() {
			return &ErrDimensionMismatch{Expected: vf.Dimensionality(), Actual: v.Dimensionality()}
		}
	}
	r.order = append(r.order, id)
	r.data[id] = o
	return nil
}

// Size implements Untyped.
func (r *MemoryRelation[O]) Size() int { return len(r.order) }

// IterIDs implements Untyped.
func (r *MemoryRelation[O]) IterIDs() iter.Seq[ids.ID] {
	return slices.Values(r.order)
}

// TypeInfo implements Untyped.
func (r *MemoryRelation[O]) TypeInfo() TypeInformation { return r.typeInfo }

// Get implements Relation.
func (r *MemoryRelation[O]) Get(id ids.ID) (O, error) {
	o, ok := r.data[id]
	if !ok {
		var zero O
		return zero, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return o, nil
}

// GetAny implements Untyped.
func (r *MemoryRelation[O]) GetAny(id ids.ID) (any, error) {
	o, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// IDs returns the identifiers in insertion order.
func (r *MemoryRelation[O]) IDs() *ids.ArrayIDs {
	return ids.NewArray(r.order...)
}
