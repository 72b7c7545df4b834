package stats

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
)

// Centroid returns the per-dimension mean of all elements of r.
func Centroid[V vector.Vector](r relation.Relation[V]) (V, error) {
	var zero V
	if r == nil || r.Size() == 0 {
		return zero, &relation.ErrEmptyScope{Op: opCentroid}
	}
	vf, err := AssumeVectorField(r)
	if err != nil {
		return zero, err
	}
	c, err := mean(r, r.IterIDs(), vf.Dimensionality(), r.Size())
	if err != nil {
		return zero, err
	}
	return vf.NewInstance(c), nil
}

// CentroidOf returns the per-dimension mean of the elements of r under scope.
func CentroidOf[V vector.Vector](r relation.Relation[V], scope ids.IDs) (V, error) {
	var zero V
	if empty(scope) {
		return zero, &relation.ErrEmptyScope{Op: opCentroid}
	}
	vf, err := AssumeVectorField(r)
	if err != nil {
		return zero, err
	}
	c, err := mean(r, scope.All(), vf.Dimensionality(), scope.Len())
	if err != nil {
		return zero, err
	}
	return vf.NewInstance(c), nil
}

// CentroidMasked returns the mean of the elements under scope restricted to the
// dimensions set in mask. Bit i selects the 0-based dimension i; a nil mask
// selects every dimension. Dimensions outside the mask are 0 in the result,
// which keeps the full dimensionality.
func CentroidMasked[V vector.Vector](r relation.Relation[V], scope ids.IDs, mask *bitset.BitSet) (V, error) {
	var zero V
	if empty(scope) {
		return zero, &relation.ErrEmptyScope{Op: opCentroid}
	}
	vf, err := AssumeVectorField(r)
	if err != nil {
		return zero, err
	}
	sums, _, err := sum(r, scope.All(), vf.Dimensionality(), mask)
	if err != nil {
		return zero, err
	}
	// Every slot is divided, masked-out zeros included.
	divide(sums, scope.Len())
	return vf.NewInstance(sums), nil
}

// CentroidIter returns the masked mean of the elements yielded by seq. The
// sequence is consumed exactly once and its length need not be known in
// advance; a nil mask selects every dimension.
func CentroidIter[V vector.Vector](r relation.Relation[V], seq iter.Seq[ids.ID], mask *bitset.BitSet) (V, error) {
	var zero V
	vf, err := AssumeVectorField(r)
	if err != nil {
		return zero, err
	}
	sums, n, err := sum(r, seq, vf.Dimensionality(), mask)
	if err != nil {
		return zero, err
	}
	if n == 0 {
		return zero, &relation.ErrEmptyScope{Op: opCentroid}
	}
	divide(sums, n)
	return vf.NewInstance(sums), nil
}
