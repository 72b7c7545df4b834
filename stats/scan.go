package stats

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
)

const (
	opCentroid   = "centroid"
	opCovariance = "covariance matrix"
	opVariance   = "variance"
)

// get looks up id and checks that the element has at least dim coordinates.
func get[V vector.Vector](r relation.Relation[V], id ids.ID, dim int) (V, error) {
	v, err := r.Get(id)
	if err != nil {
		return v, err
	}
	if v.Dimensionality() < dim {
		return v, &relation.ErrDimensionMismatch{Expected: dim, Actual: v.Dimensionality()}
	}
	return v, nil
}

// sum adds the coordinates of every element yielded by seq into a slice of
// length dim. When mask is non-nil only its set dimensions accumulate. It
// returns the sums and the number of elements seen.
func sum[V vector.Vector](r relation.Relation[V], seq iter.Seq[ids.ID], dim int, mask *bitset.BitSet) ([]float64, int, error) {
	sums := make([]float64, dim)
	n := 0
	for id := range seq {
		v, err := get(r, id, dim)
		if err != nil {
			return nil, 0, err
		}
		n++
		if mask == nil {
			for d := range sums {
				sums[d] += v.Value(d + 1)
			}
			continue
		}
		for d, ok := mask.NextSet(0); ok && int(d) < dim; d, ok = mask.NextSet(d + 1) {
			sums[d] += v.Value(int(d) + 1)
		}
	}
	return sums, n, nil
}

// mean sums the elements under seq and divides every slot by n.
func mean[V vector.Vector](r relation.Relation[V], seq iter.Seq[ids.ID], dim, n int) ([]float64, error) {
	sums, _, err := sum(r, seq, dim, nil)
	if err != nil {
		return nil, err
	}
	divide(sums, n)
	return sums, nil
}

func divide(values []float64, n int) {
	size := float64(n)
	for i := range values {
		values[i] /= size
	}
}

func empty(scope ids.IDs) bool {
	return scope == nil || scope.IsEmpty()
}
